package game

import "github.com/plus3/invaders/ecs"

const performanceSampleCount = 120

// Performance is a singleton ring buffer of recent frame times plus a live
// entity count, consumed by the debug overlay.
type Performance struct {
	FrameTimes  [performanceSampleCount]float32
	Cursor      int
	Samples     int
	EntityCount int
}

// Average returns the mean frame time of the recorded samples, in seconds.
func (p *Performance) Average() float64 {
	if p.Samples == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < p.Samples; i++ {
		sum += float64(p.FrameTimes[i])
	}
	return sum / float64(p.Samples)
}

// Series returns the sample buffer ordered oldest to newest.
func (p *Performance) Series() []float32 {
	out := make([]float32, 0, p.Samples)
	for i := 0; i < p.Samples; i++ {
		out = append(out, p.FrameTimes[(p.Cursor+i)%p.Samples])
	}
	return out
}

// MetricsSystem records frame times and the entity count each tick.
type MetricsSystem struct {
	Performance ecs.Singleton[Performance]
}

func (s *MetricsSystem) Execute(frame *ecs.UpdateFrame) {
	perf := s.Performance.Get()

	perf.FrameTimes[perf.Cursor] = float32(frame.DeltaTime)
	perf.Cursor = (perf.Cursor + 1) % performanceSampleCount
	if perf.Samples < performanceSampleCount {
		perf.Samples++
	}

	perf.EntityCount = frame.Storage.CollectStats().TotalEntityCount
}
