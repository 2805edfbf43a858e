package main

import (
	"fmt"
	"html"
	"io"
	"net/http"

	"github.com/0x0FACED/go-quickhull/pkg/logger"
	"github.com/0x0FACED/go-quickhull/pkg/quickhull"
	"github.com/0x0FACED/go-quickhull/static"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Обработчик страницы с оболочкой, формой и логами построения
func newHullHandler(server *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := parseParams(r)
		if err != nil {
			server.Warn("Некорректная форма, параметры по умолчанию", zap.Error(err))
		}

		level := zapcore.InfoLevel
		if p.Debug {
			level = zapcore.DebugLevel
		}
		log := logger.New(logger.WithLevel(level))
		defer log.ClearLogs()

		points := generateCloud(p)
		log.Info("[app] Облако точек", zap.Int("points", len(points)), zap.String("shape", p.Shape))

		hull, err := quickhull.New(
			quickhull.WithLogger(log),
			quickhull.WithValidation(true),
		).FromPoints(points)

		fmt.Fprintln(w, static.Part1)

		if err != nil {
			server.Error("Ошибка построения", zap.Error(err))
			fmt.Fprintf(w, "<p class=\"error\">%s</p>\n", html.EscapeString(err.Error()))
		} else {
			scatter := hullToEcharts(points, hull)
			if err := scatter.Render(w); err != nil {
				server.Error("Ошибка рендеринга", zap.Error(err))
			}
			writeStats(w, hull)
		}

		fmt.Fprintln(w, static.Part2)

		// Вставляем логи в HTML
		for _, l := range log.HTML() {
			fmt.Fprintln(w, l)
		}

		fmt.Fprintln(w, static.Part3)
	}
}

func writeStats(w io.Writer, hull *quickhull.ConvexHull) {
	stats := hull.Stats()

	rows := []struct {
		name  string
		value string
	}{
		{"Точек", fmt.Sprint(stats.Points)},
		{"Вершин оболочки", fmt.Sprint(len(hull.HullVertices()))},
		{"Граней", fmt.Sprint(hull.Len())},
		{"Итераций", fmt.Sprint(stats.Iterations)},
		{"Создано / удалено граней", fmt.Sprintf("%d / %d", stats.FacesCreated, stats.FacesDeleted)},
		{"Отброшено точек", fmt.Sprint(stats.Discarded)},
		{"Объем", fmt.Sprintf("%.3f", hull.Volume())},
		{"Площадь поверхности", fmt.Sprintf("%.3f", hull.SurfaceArea())},
		{"Погрешность", fmt.Sprintf("%.3g", hull.Tolerance())},
	}

	fmt.Fprintln(w, `<table id="stats">`)
	for _, row := range rows {
		fmt.Fprintf(w, "<tr><td>%s</td><td>%s</td></tr>\n", row.name, row.value)
	}
	fmt.Fprintln(w, `</table>`)
}
