package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Vitals is what the chat core reports on each beat, next to the process stats.
type Vitals struct {
	Peers    int
	Topics   int
	Messages uint64
}

// HeartbeatWorker logs the process health and the chat vitals every interval.
type HeartbeatWorker struct {
	log      *slog.Logger
	interval time.Duration
	vitals   func() Vitals
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, vitals func() Vitals) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:      log,
		interval: interval,
		vitals:   vitals,
	}
}

// Run returns nil on cancellation so the supervisor does not restart it.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	v := w.vitals()
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "error", err)
		w.log.Debug("Heartbeat", "peers", v.Peers, "topics", v.Topics, "messages", v.Messages)
		return
	}
	w.log.Debug("Heartbeat",
		"peers", v.Peers,
		"topics", v.Topics,
		"messages", v.Messages,
		"rss_bytes", rss,
		"cpu_percent", cpu,
		"status", status)
}

// selfStats retrieves memory, CPU and OS status for the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
