package domain

type ChannelSummary struct {
	ShortCount       int      `json:"shortCount"`
	Views            float64  `json:"views"`
	Impressions      float64  `json:"impressions"`
	AvgCTR           *float64 `json:"avgCtr"`
	AvgViewPercent   *float64 `json:"avgViewPercent"`
	AvgWatchDuration *float64 `json:"avgWatchDuration"`
	CTRTrend         *float64 `json:"ctrTrend"`
	RetentionTrend   *float64 `json:"retentionTrend"`
	Insights         []string `json:"insights"`
}
