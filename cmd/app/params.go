package main

import (
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/0x0FACED/go-quickhull/pkg/geom"
	"github.com/0x0FACED/go-quickhull/pkg/pointcloud"
	"github.com/golang/geo/r3"
)

const (
	maxPoints = 100000
	// с debug каждая итерация пишет строки в лог страницы
	maxDebugPoints = 5000
	// сторона куба, в котором генерируются точки
	cloudSize = 1000.0
)

// Параметры из формы
type params struct {
	Points int
	Shape  string
	Seed   int64
	Rotate bool
	Debug  bool
}

func defaultParams() params {
	return params{Points: 200, Shape: "random"}
}

// Некорректные значения оставляем по умолчанию. Ошибка - только если форму не удалось разобрать.
func parseParams(r *http.Request) (params, error) {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p, nil
	}

	if err := r.ParseForm(); err != nil {
		return p, fmt.Errorf("parse form: %w", err)
	}

	p.Debug = r.FormValue("debug") == "true"

	limit := maxPoints
	if p.Debug {
		limit = maxDebugPoints
	}
	if n, err := strconv.Atoi(r.FormValue("points")); err == nil && n >= 0 {
		p.Points = min(n, limit)
	}
	switch shape := r.FormValue("shape"); shape {
	case "random", "sphere", "cube", "grid":
		p.Shape = shape
	}
	if seed, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
		p.Seed = seed
	}
	p.Rotate = r.FormValue("rotate") == "true"

	return p, nil
}

func generateCloud(p params) []r3.Vector {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	box := geom.Box{Max: r3.Vector{X: cloudSize, Y: cloudSize, Z: cloudSize}}

	var points []r3.Vector
	switch p.Shape {
	case "sphere":
		points = pointcloud.Translate(pointcloud.Sphere(p.Points, cloudSize/2, rng), box.Center())
	case "cube":
		// вершины куба и точки внутри него
		points = pointcloud.Cube(cloudSize)
		if p.Points > len(points) {
			points = append(points, pointcloud.Random(p.Points-len(points), box, rng)...)
		}
	case "grid":
		side := int(math.Round(math.Cbrt(float64(p.Points))))
		points = pointcloud.Grid(side, cloudSize)
	default:
		points = pointcloud.Random(p.Points, box, rng)
	}

	if p.Rotate {
		points = pointcloud.Rotate(points, rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi)
	}

	return points
}
