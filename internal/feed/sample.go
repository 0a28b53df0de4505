//go:build !tinygo

package feed

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Sample is one set of host readings, already scaled to the wire range.
type Sample struct {
	CPU     uint8
	Mem     uint8
	CPUTemp uint8
	GPUTemp uint8
}

// Line encodes s in the device protocol, newline-terminated.
func (s Sample) Line() string {
	return fmt.Sprintf("cpu:%d,mem:%d,cpu_temp:%d,gpu_temp:%d\n", s.CPU, s.Mem, s.CPUTemp, s.GPUTemp)
}

// clampByte limits v to the 0–255 range the device accepts.
func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}

type cpuTimes struct {
	busy, total uint64
}

// parseProcStat reads the aggregate "cpu" line of /proc/stat.
func parseProcStat(procStat string) (cpuTimes, error) {
	scanner := bufio.NewScanner(strings.NewReader(procStat))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 || fields[0] != "cpu" {
			continue
		}
		var t cpuTimes
		for i := 1; i < len(fields); i++ {
			val, err := strconv.ParseUint(fields[i], 10, 64)
			if err != nil {
				return cpuTimes{}, fmt.Errorf("parse /proc/stat cpu field %d: %w", i, err)
			}
			t.total += val
			// idle (4) and iowait (5) are not busy time.
			if i != 4 && i != 5 {
				t.busy += val
			}
		}
		return t, nil
	}
	if err := scanner.Err(); err != nil {
		return cpuTimes{}, fmt.Errorf("scan /proc/stat: %w", err)
	}
	return cpuTimes{}, fmt.Errorf("/proc/stat: no aggregate cpu line")
}

// cpuPercent is the busy share between two /proc/stat readings.
func cpuPercent(prev, cur cpuTimes) float64 {
	if cur.total <= prev.total || cur.busy < prev.busy {
		return 0
	}
	return float64(cur.busy-prev.busy) / float64(cur.total-prev.total) * 100
}

// parseMeminfo returns used memory as a percentage of MemTotal, counting
// MemAvailable as free.
func parseMeminfo(meminfo string) (float64, error) {
	var total, avail uint64
	var haveTotal, haveAvail bool
	scanner := bufio.NewScanner(strings.NewReader(meminfo))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		val, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total, haveTotal = val, true
		case "MemAvailable:":
			avail, haveAvail = val, true
		}
	}
	if !haveTotal || !haveAvail || total == 0 {
		return 0, fmt.Errorf("/proc/meminfo: missing MemTotal or MemAvailable")
	}
	if avail > total {
		avail = total
	}
	return float64(total-avail) / float64(total) * 100, nil
}

// parseMilliCelsius reads a sysfs temperature (millidegrees Celsius).
func parseMilliCelsius(s string) (float64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse temperature %q: %w", strings.TrimSpace(s), err)
	}
	return float64(v) / 1000, nil
}

// Sampler collects host readings from procfs and sysfs.
type Sampler struct {
	cfg      Config
	readFile func(string) ([]byte, error)

	prev    cpuTimes
	hasPrev bool
}

// NewSampler returns a sampler reading the live host.
func NewSampler(cfg Config) *Sampler {
	return &Sampler{cfg: cfg, readFile: os.ReadFile}
}

// Sample takes one reading. CPU load is 0 on the first call, since it needs
// two /proc/stat readings. Missing temperature sources read as 0, which the
// device shows as "no GPU" for the GPU field.
func (s *Sampler) Sample() (Sample, error) {
	var out Sample

	stat, err := s.readFile("/proc/stat")
	if err != nil {
		return Sample{}, fmt.Errorf("read /proc/stat: %w", err)
	}
	cur, err := parseProcStat(string(stat))
	if err != nil {
		return Sample{}, err
	}
	if s.hasPrev {
		out.CPU = clampByte(cpuPercent(s.prev, cur))
	}
	s.prev, s.hasPrev = cur, true

	meminfo, err := s.readFile("/proc/meminfo")
	if err != nil {
		return Sample{}, fmt.Errorf("read /proc/meminfo: %w", err)
	}
	mem, err := parseMeminfo(string(meminfo))
	if err != nil {
		return Sample{}, err
	}
	out.Mem = clampByte(mem)

	out.CPUTemp = s.temperature(s.cfg.CPUTempPath)
	out.GPUTemp = s.temperature(s.cfg.GPUTempPath)
	return out, nil
}

func (s *Sampler) temperature(path string) uint8 {
	if path == "" {
		return 0
	}
	b, err := s.readFile(path)
	if err != nil {
		return 0
	}
	c, err := parseMilliCelsius(string(b))
	if err != nil {
		return 0
	}
	return clampByte(c)
}
