package logparse

// BurnSample is the summary of one CPU burner run.
type BurnSample struct {
	TotalTime float64 // s
	Cycles    int64
	// KcyclesPerSec is the throughput the burner reports next to the cycle
	// count; zero when the report omits it.
	KcyclesPerSec float64
}

// PowerSample is the summary of one power sampler run.
type PowerSample struct {
	TotalTime  float64 // s
	SOCEnergy  float64 // J
	SOCPower   float64 // W
	CA57Energy float64 // J
	CA57Power  float64 // W

	// Optional "Total energy" line; zero when absent.
	TotalEnergy float64 // J
	MeanPower   float64 // W
}
