package config

// Weights are the per-metric coefficients of the importance score. They
// should sum to 1.0 for a perfect node to reach exactly 1.0, but the scorer
// clamps and never assumes it.
type Weights struct {
	Upload    float64 `json:"upload"`
	Download  float64 `json:"download"`
	Latency   float64 `json:"latency"`
	Uptime    float64 `json:"uptime"`
	Stability float64 `json:"stability"`
}

// Thresholds are the per-metric maxima used for normalization. A threshold
// of 0 or below disables the factor.
type Thresholds struct {
	UploadMbps       float64 `json:"upload_mbps"`
	DownloadMbps     float64 `json:"download_mbps"`
	LatencyMs        float64 `json:"latency_ms"`
	UptimePercent    float64 `json:"uptime_percent"`
	StabilityPercent float64 `json:"stability_percent"`
}

// PoiConfig parameterizes the importance scorer for an epoch. It is
// immutable once handed to the scorer.
type PoiConfig struct {
	Weights    Weights    `json:"weights"`
	Thresholds Thresholds `json:"thresholds"`
}

func GetDefaultPoiConfig() *PoiConfig {
	return &PoiConfig{
		Weights: Weights{
			Upload:    0.25,
			Download:  0.25,
			Latency:   0.20,
			Uptime:    0.20,
			Stability: 0.10,
		},
		Thresholds: Thresholds{
			UploadMbps:       100.0,
			DownloadMbps:     1000.0,
			LatencyMs:        200.0,
			UptimePercent:    100.0,
			StabilityPercent: 100.0,
		},
	}
}
