package model

// Column names of the surveys/markers/perfs view the sample rows are exported from.
const (
	ColProjectName    = "PROJECT_NAME"
	ColWellCommonName = "WELL_COMMON_NAME"
	ColAPISuffix      = "API_SUFFIX"
	ColMD             = "MD"
	ColTVDSS          = "TVDSS"
	ColMapNorthing    = "MAP_NORTHING"
	ColMapEasting     = "MAP_EASTING"
	ColMarker         = "mrkname"
	ColTopPerf        = "top_perf"
	ColBotPerf        = "bot_perf"
	ColFracFlag       = "frac_flag"
	ColPerfStatus     = "perf_status"
)

// Perforation statuses known to the status color table.
const (
	PerfStatusActive   = "ACTIVE"
	PerfStatusInactive = "INACTIVE"
)

// SampleRow is one depth-indexed sample of a well. Nullable text columns are
// pointers; missing numeric values are NaN.
type SampleRow struct {
	ProjectName    string
	WellCommonName string
	APISuffix      *string
	MD             float64
	// TVDSS is the stored true vertical depth subsea, positive downward.
	TVDSS       float64
	MapNorthing float64
	MapEasting  float64
	Marker      *string
	TopPerf     float64
	BotPerf     float64
	FracFlag    *string
	PerfStatus  *string
}

// Z returns the plotting elevation of the sample.
func (r SampleRow) Z() float64 {
	return -r.TVDSS
}

// CleanedRow is a sample row that carries a derived well identity.
type CleanedRow struct {
	SampleRow
	WellID string
}

// WellID derives the identity of a wellbore instance.
func WellID(commonName, apiSuffix string) string {
	return commonName + "_" + apiSuffix
}
