// curve_export 把已注册的缓动曲线渲染为 WebP 图像
//
// 用法:
//
//	go run ./cmd/curve_export --out curves --size 256
//	go run ./cmd/curve_export --curves easeOutBounce,easeOutElastic
//	go run ./cmd/curve_export --bezier 0.25,0.46,0.45,0.94
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/decker502/motionkit/internal/curveplot"
	"github.com/decker502/motionkit/pkg/utils"
	"github.com/dustin/go-humanize"
)

// customCurveName --bezier 曲线的输出文件名
const customCurveName = "cubicBezier"

func main() {
	outDir := flag.String("out", "curves", "输出目录")
	size := flag.Int("size", 256, "图像边长（像素）")
	curves := flag.String("curves", "", "逗号分隔的曲线名，默认全部")
	bezier := flag.String("bezier", "", "额外渲染一条三次贝塞尔曲线，格式 x1,y1,x2,y2")
	flag.Parse()

	jobs, err := buildJobs(*curves, *bezier)
	if err != nil {
		log.Fatalf("[CurveExport] %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("[CurveExport] Failed to create output dir: %v", err)
	}

	var total uint64
	for _, job := range jobs {
		n, err := exportCurve(job, *outDir, *size)
		if err != nil {
			log.Fatalf("[CurveExport] %s: %v", job.name, err)
		}
		total += n
	}
	log.Printf("[CurveExport] Wrote %d curves to %s (%s)", len(jobs), *outDir, humanize.Bytes(total))
}

// curveJob 一条待渲染的曲线
type curveJob struct {
	name string
	fn   utils.EasingFunc
}

// buildJobs 解析命令行选择的曲线
//
// names 为空时选择全部已注册曲线；bezier 非空时追加一条自定义曲线。
func buildJobs(names, bezier string) ([]curveJob, error) {
	var selected []string
	if strings.TrimSpace(names) == "" {
		selected = utils.EasingNames()
	} else {
		for _, name := range strings.Split(names, ",") {
			if name = strings.TrimSpace(name); name != "" {
				selected = append(selected, name)
			}
		}
	}

	jobs := make([]curveJob, 0, len(selected)+1)
	for _, name := range selected {
		fn, err := utils.EasingByName(name)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, curveJob{name: name, fn: fn})
	}

	if bezier != "" {
		points, err := parseBezier(bezier)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, curveJob{name: customCurveName, fn: utils.NewCubicBezier(points).Ease})
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no curves selected")
	}
	return jobs, nil
}

// parseBezier 解析 "x1,y1,x2,y2"，x 必须在 [0, 1] 内
func parseBezier(s string) ([4]float64, error) {
	var points [4]float64
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return points, fmt.Errorf("bezier needs 4 numbers, got %d", len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return points, fmt.Errorf("invalid bezier value %q: %w", part, err)
		}
		points[i] = v
	}
	if points[0] < 0 || points[0] > 1 || points[2] < 0 || points[2] > 1 {
		return points, fmt.Errorf("bezier x control values must be within [0, 1], got %v and %v", points[0], points[2])
	}
	return points, nil
}

// exportCurve 渲染并写出 <name>.webp，返回写出的字节数
func exportCurve(job curveJob, outDir string, size int) (uint64, error) {
	img, err := curveplot.Render(job.fn, size, curveplot.DefaultStyle())
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := curveplot.Encode(&buf, img); err != nil {
		return 0, err
	}

	path := filepath.Join(outDir, job.name+".webp")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}

	n := uint64(buf.Len())
	log.Printf("[CurveExport] %s -> %s (%s)", job.name, path, humanize.Bytes(n))
	return n, nil
}
