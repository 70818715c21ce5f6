package shapes

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/surfmesh/pkg/math"
	"github.com/Faultbox/surfmesh/pkg/surface"
)

// builtin returns the default shapes in catalog order.
func builtin() []Shape {
	return []Shape{
		snail(),
		sandclock(),
		moebiusStrip(),
		rose(),
		daisy(),
		knot(),
		triaxialTeardrop(),
		hyperbolicHelicoid(),
		folium(),
		boySurface(),
		sineSurface(),
		ripple(),
		sphere(),
		torus(),
	}
}

func shape(name string, u, v surface.Range, res surface.Resolution, eval func(u, v float32) math.Vec3) Shape {
	return Shape{
		Name: name,
		Func: surface.Func{U: u, V: v, Res: res, Eval: eval},
	}
}

func vec(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

var (
	zeroTo2Pi = surface.Range{Min: 0, Max: 2 * math32.Pi}
	zeroTo6Pi = surface.Range{Min: 0, Max: 6 * math32.Pi}
	zeroToPi  = surface.Range{Min: 0, Max: math32.Pi}
	res150    = surface.Resolution{U: 150, V: 150}
	res120    = surface.Resolution{U: 120, V: 120}
)

func snail() Shape {
	return shape("Snail", zeroTo6Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		e := math32.Exp(u / (6 * math32.Pi))
		c := math32.Pow(math32.Cos(v/2), 2)
		return vec(
			2*(1-e*math32.Cos(u)*c),
			2*(-1+e*math32.Sin(u)*c),
			1-math32.Exp(u/(3*math32.Pi))-math32.Sin(v)+e*math32.Sin(v),
		)
	})
}

func sandclock() Shape {
	return shape("Sandclock", surface.Range{Min: -1, Max: 1}, surface.Range{Min: 0, Max: 2}, surface.Resolution{U: 150, V: 50},
		func(u, v float32) math.Vec3 {
			r := math32.Cos(0.5 * math32.Pi * v)
			return vec(r*math32.Sin(math32.Pi*u), v, r*math32.Cos(math32.Pi*u))
		})
}

func moebiusStrip() Shape {
	return shape("Moebius Strip", zeroTo2Pi, zeroTo2Pi, surface.Resolution{U: 50, V: 50}, func(u, v float32) math.Vec3 {
		r := 3 + math32.Cos(u/2)*math32.Sin(v) - math32.Sin(u/2)*math32.Sin(2*v)
		return vec(
			r*math32.Cos(u),
			r*math32.Sin(u),
			math32.Sin(u/2)*math32.Sin(v)+math32.Cos(u/2)*math32.Sin(2*v),
		)
	})
}

func rose() Shape {
	return shape("Rose", zeroTo2Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		return vec(
			math32.Cos(v)+2*math32.Cos(u-1)*v,
			math32.Sin(v)-2*math32.Sin(u-1)*v,
			math32.Sin(v*u)*2,
		)
	})
}

func daisy() Shape {
	return shape("Daisy", zeroTo2Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		r := math32.Cos(4*u) * math32.Pow(8, math32.Cos(v))
		return vec(r*math32.Cos(u)*math32.Cos(v), r*math32.Sin(u)*math32.Cos(v), r*math32.Sin(v))
	})
}

func knot() Shape {
	minusPiToPi := surface.Range{Min: -math32.Pi, Max: math32.Pi}
	return shape("Knot", minusPiToPi, minusPiToPi, surface.Resolution{U: 100, V: 10}, func(u, v float32) math.Vec3 {
		a := 2 + math32.Cos(v)
		b := 2 + math32.Cos(v+2*math32.Pi/3)
		return vec(
			2*math32.Sin(3*u)/a,
			2*(math32.Sin(u)+2*math32.Sin(2*u))/b,
			math32.Cos(u)-2*math32.Cos(2*u)*a*b/4,
		)
	})
}

// The next three shapes share a scale factor of 3.
const trigScale = 3

func triaxialTeardrop() Shape {
	return shape("Triaxial Teardrop", zeroTo6Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		r := (1 - math32.Cos(u)) * math32.Cos(u+2*math32.Pi/3)
		return vec(
			trigScale*r*math32.Cos(v+2*math32.Pi/3)/2,
			trigScale*r*math32.Cos(v-2*math32.Pi/3)/2,
			trigScale*math32.Cos(u-2*math32.Pi/3),
		)
	})
}

func hyperbolicHelicoid() Shape {
	return shape("Hyperbolic Helicoid", zeroTo6Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		d := 1 + math32.Cos(u)*math32.Cos(v)
		xy := trigScale * math32.Sin(v) * math32.Cos(3*u) / d
		return vec(xy, xy, trigScale*math32.Cos(v)*math32.Sin(u)/d)
	})
}

func folium() Shape {
	return shape("Folium", zeroTo6Pi, zeroTo2Pi, res150, func(u, v float32) math.Vec3 {
		return vec(
			trigScale*math32.Cos(u)*(2*v/math32.Pi-math32.Tan(v)),
			trigScale*math32.Cos(u+2*math32.Pi/3)/math32.Cos(v),
			trigScale*math32.Cos(u-2*math32.Pi/3)/math32.Cos(v),
		)
	})
}

func boySurface() Shape {
	return shape("Boy Surface", surface.Range{Min: -math32.Pi / 2, Max: math32.Pi / 2}, zeroToPi, res120, func(u, v float32) math.Vec3 {
		sqrt2 := math32.Sqrt(2)
		cv2 := math32.Pow(math32.Cos(v), 2)
		d := 2 - sqrt2*math32.Sin(3*u)*math32.Sin(2*v)
		return vec(
			(sqrt2*cv2*math32.Cos(2*u)+math32.Cos(u)*math32.Sin(2*v))/d,
			(sqrt2*cv2*math32.Sin(2*u)-math32.Sin(u)*math32.Sin(2*v))/d,
			3*cv2/d,
		)
	})
}

func sineSurface() Shape {
	const a = 2
	return shape("Sine Surface", zeroTo2Pi, zeroTo2Pi, res120, func(u, v float32) math.Vec3 {
		return vec(a*math32.Sin(u), a*math32.Sin(v), a*math32.Sin(u+v))
	})
}

func ripple() Shape {
	return shape("Ripple", zeroTo2Pi, zeroTo2Pi, res120, func(u, v float32) math.Vec3 {
		return vec(v*math32.Cos(u), math32.Sin(10*v)*math32.Cos(10*v), v*math32.Sin(u))
	})
}

func sphere() Shape {
	return shape("Sphere", zeroTo2Pi, zeroToPi, res120, func(u, v float32) math.Vec3 {
		return vec(math32.Cos(u)*math32.Sin(v), math32.Sin(u)*math32.Sin(v), math32.Cos(v))
	})
}

func torus() Shape {
	const r = 2
	return shape("Torus", zeroTo2Pi, zeroTo2Pi, surface.Resolution{U: 10, V: 10}, func(u, v float32) math.Vec3 {
		return vec(
			r*math32.Cos(u)+math32.Cos(u)*math32.Cos(v),
			r*math32.Sin(u)+math32.Sin(u)*math32.Cos(v),
			math32.Sin(v),
		)
	})
}
