package http

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHealth estado del proceso.
type ApplicationHealth struct {
	Environment string      `json:"environment"`
	Uptime      string      `json:"uptime"`
	MemoryUsage MemoryUsage `json:"memoryUsage"`
}

type MemoryUsage struct {
	HeapTotal string `json:"heapTotal"`
	HeapUsed  string `json:"heapUsed"`
}

// SystemHealth estado de la máquina. CPUUsage es loadavg de 1, 5 y 15 minutos (vacío fuera de Linux).
type SystemHealth struct {
	CPUUsage   []float64 `json:"cpuUsage"`
	NumCPU     int       `json:"numCpu"`
	Goroutines int       `json:"goroutines"`
	SysMemory  string    `json:"sysMemory"`
}

// HealthHandler expone /self y /health.
type HealthHandler struct {
	res     *Responder
	env     string
	started time.Time
}

// NewHealthHandler construye el handler; el uptime se cuenta desde aquí.
func NewHealthHandler(res *Responder, env string) *HealthHandler {
	return &HealthHandler{res: res, env: env, started: time.Now()}
}

// Self godoc
// @Summary      Auto-chequeo
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/self [get]
func (h *HealthHandler) Self(c *fiber.Ctx) error {
	return h.res.Send(c, fiber.StatusOK, "Success", nil)
}

// Health godoc
// @Summary      Salud de la aplicación y del sistema
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.Envelope
// @Router       /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return h.res.Send(c, fiber.StatusOK, "Success", fiber.Map{
		"application": ApplicationHealth{
			Environment: h.env,
			Uptime:      fmt.Sprintf("%.2f Second", time.Since(h.started).Seconds()),
			MemoryUsage: MemoryUsage{HeapTotal: megabytes(m.HeapSys), HeapUsed: megabytes(m.HeapAlloc)},
		},
		"system": SystemHealth{
			CPUUsage:   loadAverage(),
			NumCPU:     runtime.NumCPU(),
			Goroutines: runtime.NumGoroutine(),
			SysMemory:  megabytes(m.Sys),
		},
	})
}

func megabytes(b uint64) string {
	return fmt.Sprintf("%.2f MB", float64(b)/(1024*1024))
}

func loadAverage() []float64 {
	raw, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return []float64{}
	}
	fields := strings.Fields(string(raw))
	out := make([]float64, 0, 3)
	for i := 0; i < 3 && i < len(fields); i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
