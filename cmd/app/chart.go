package main

import (
	"github.com/0x0FACED/go-quickhull/pkg/quickhull"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/geo/r3"
)

func prepareScatter3D(scatter *charts.Scatter3D) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "640px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Выпуклая оболочка (QuickHull)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z"}),
	)
}

func toChart3DData(p r3.Vector) opts.Chart3DData {
	return opts.Chart3DData{
		Value: []interface{}{p.X, p.Y, p.Z},
	}
}

// Точки делим на вершины оболочки и все остальные
func hullToEcharts(points []r3.Vector, hull *quickhull.ConvexHull) *charts.Scatter3D {
	scatter := charts.NewScatter3D()
	prepareScatter3D(scatter)

	onHull := make(map[int]bool)
	for _, idx := range hull.HullVertices() {
		onHull[idx] = true
	}

	inner := make([]opts.Chart3DData, 0, len(points))
	vertices := make([]opts.Chart3DData, 0, len(onHull))
	for i, p := range points {
		if onHull[i] {
			vertices = append(vertices, toChart3DData(p))
		} else {
			inner = append(inner, toChart3DData(p))
		}
	}

	scatter.AddSeries("Точки", inner,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "lightgray",
		}),
	)

	scatter.AddSeries("Оболочка", vertices,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "lightgreen",
		}),
	)

	return scatter
}
