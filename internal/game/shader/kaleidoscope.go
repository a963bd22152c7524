//go:build ignore

//kage:unit pixels

package main

const Pi = 3.14159265359
const MaxIterations = 10

// Uniform variables. Time is already scaled by the speed factor.
var Time float
var Resolution vec2
var Iterations float
var Symmetry float
var Complexity float
var RotationSpeed float
var Color1 vec3
var Color2 vec3
var EdgeIntensity float
var GlowIntensity float
var HarmonicScale float
var SpiralFactor float
var PatternMix float

func rotate2(p vec2, a float) vec2 {
	c := cos(a)
	s := sin(a)
	return vec2(p.x*c-p.y*s, p.x*s+p.y*c)
}

func cmul(a vec2, b vec2) vec2 {
	return vec2(a.x*b.x-a.y*b.y, a.x*b.y+a.y*b.x)
}

func hsv2rgb(c vec3) vec3 {
	k := vec4(1.0, 2.0/3.0, 1.0/3.0, 3.0)
	p := abs(fract(c.xxx+k.xyz)*6.0 - k.www)
	return c.z * mix(k.xxx, clamp(p-k.xxx, 0.0, 1.0), c.y)
}

func fold(uv vec2) vec2 {
	seg := 2.0 * Pi / Symmetry
	angle := atan2(uv.y, uv.x)
	radius := length(uv)
	index := floor(angle / seg)
	rel := angle - index*seg
	if mod(index, 2.0) >= 1.0 {
		rel = seg - rel
	}
	a := index*seg + rel
	return vec2(cos(a), sin(a)) * radius
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	res := Resolution
	pos := dstPos.xy - imageDstOrigin()
	// Bottom-left origin, matching the CPU evaluator.
	frag := vec2(pos.x, res.y-pos.y)
	uv := (frag - 0.5*res) / min(res.x, res.y)

	p := rotate2(fold(uv), Time*RotationSpeed)

	for i := 0; i < MaxIterations; i++ {
		if float(i) >= Iterations {
			break
		}
		d := dot(p, p)
		if d == 0.0 {
			p = vec2(-0.5, -0.5)
		} else {
			p = abs(p)/d - 0.5
		}
		p = rotate2(p, Time*RotationSpeed+float(i)*0.1+2.0*Pi/Symmetry)
		p = cmul(p, vec2(cos(Time*0.1), sin(Time*0.1)))
	}

	harmonic := 0.5 + 0.5*sin(length(p)*HarmonicScale-Time*2.0)
	spiral := 0.5 + 0.5*sin(length(p)*10.0-atan2(p.y, p.x)*SpiralFactor+Time)
	w := PatternMix + 0.5*sin(Time*0.2)
	v := mix(harmonic, spiral, w)

	edge := pow(0.5+0.5*sin(v*Complexity), 10.0) * EdgeIntensity
	col := mix(Color1, Color2, clamp(v*2.0-0.5, 0.0, 1.0)) + edge
	col *= 1.0 + length(p)*0.5

	dist := length(uv)
	ambient := hsv2rgb(vec3(0.7, 0.5, 0.1*dist*0.5))
	col = mix(ambient, col, (v*0.8+0.2)*(1.0-dist*0.25))

	glow := pow(abs(sin(v*50.0+Time)), 20.0) * vec3(1.0, 0.8, 0.5) * GlowIntensity
	col += glow

	return vec4(clamp(col, 0.0, 1.0), 1.0)
}
