package dashboard

import (
	"fmt"
	"net/http"
	"os"
	"syscall"

	"github.com/c9s/goprocinfo/linux"
)

const thermalZone = "/sys/class/thermal/thermal_zone0/temp"

// systemMonitor reads host stats from procfs and sysfs. CPU usage is
// the delta between the previous and current /proc/stat sample, so the
// first reading after startup is unavailable.
type systemMonitor struct {
	statPath    string
	thermalPath string
	prev        *linux.CPUStat
}

func readTemp(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	var temp float64
	_, err = fmt.Fscanf(f, "%f", &temp)
	if err != nil {
		return 0, err
	}
	return temp / 1000, nil
}

func (mon *systemMonitor) cpuTemp() (float64, bool) {
	path := mon.thermalPath
	if path == "" {
		path = thermalZone
	}
	temp, err := readTemp(path)
	if err != nil {
		return 0, false
	}
	return temp, true
}

func cpuTotals(cpu linux.CPUStat) (total, idle uint64) {
	idle = cpu.Idle + cpu.IOWait
	total = idle + cpu.User + cpu.Nice + cpu.System + cpu.IRQ + cpu.SoftIRQ + cpu.Steal
	return
}

func (mon *systemMonitor) cpuUsage() (float64, bool) {
	path := mon.statPath
	if path == "" {
		path = "/proc/stat"
	}
	stat, err := linux.ReadStat(path)
	if err != nil {
		return 0, false
	}
	cur := stat.CPUStatAll
	prev := mon.prev
	mon.prev = &cur
	if prev == nil {
		return 0, false
	}
	total, idle := cpuTotals(cur)
	prevTotal, prevIdle := cpuTotals(*prev)
	if total <= prevTotal {
		return 0, false
	}
	busy := float64((total - prevTotal) - (idle - prevIdle))
	return 100 * busy / float64(total-prevTotal), true
}

type memStats struct {
	Percent int
	UsedMB  uint64
	TotalMB uint64
}

func readMemory() *memStats {
	info, err := linux.ReadMemInfo("/proc/meminfo")
	if err != nil || info.MemTotal == 0 {
		return nil
	}
	used := info.MemTotal - info.MemAvailable
	return &memStats{
		Percent: int(100 * used / info.MemTotal),
		UsedMB:  used / 1024,
		TotalMB: info.MemTotal / 1024,
	}
}

type diskStats struct {
	Percent int
	Used    string
	Total   string
}

func gigabytes(bytes uint64) string {
	return fmt.Sprintf("%.1f GB", float64(bytes)/(1<<30))
}

func readDisk() *diskStats {
	var fs syscall.Statfs_t
	if err := syscall.Statfs("/", &fs); err != nil || fs.Blocks == 0 {
		return nil
	}
	bsize := uint64(fs.Bsize)
	total := fs.Blocks * bsize
	used := (fs.Blocks - fs.Bfree) * bsize
	return &diskStats{
		Percent: int(100 * used / total),
		Used:    gigabytes(used),
		Total:   gigabytes(total),
	}
}

func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func readUptime() (string, bool) {
	uptime, err := linux.ReadUptime("/proc/uptime")
	if err != nil {
		return "", false
	}
	return formatUptime(uint64(uptime.Total)), true
}

func (self *Service) systemPage(w http.ResponseWriter, req *http.Request) {
	data := struct {
		CPUTemp  string
		CPUUsage string
		Memory   *memStats
		Disk     *diskStats
		Uptime   string
	}{
		CPUTemp:  "N/A",
		CPUUsage: "N/A",
		Uptime:   "N/A",
	}
	self.mutex.Lock()
	if temp, ok := self.system.cpuTemp(); ok {
		data.CPUTemp = fmt.Sprintf("%.1f°C", temp)
	}
	if usage, ok := self.system.cpuUsage(); ok {
		data.CPUUsage = fmt.Sprintf("%.0f%%", usage)
	}
	self.mutex.Unlock()
	data.Memory = readMemory()
	data.Disk = readDisk()
	if uptime, ok := readUptime(); ok {
		data.Uptime = uptime
	}
	renderTemplate(w, systemTemplate, data)
}
