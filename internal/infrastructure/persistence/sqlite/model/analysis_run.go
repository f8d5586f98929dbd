package model

type AnalysisRun struct {
	RunID       string `gorm:"column:run_id;type:text;primaryKey"`
	Disease     string `gorm:"column:disease;type:text;not null"`
	Level       string `gorm:"column:level;type:text;not null"`
	Kind        string `gorm:"column:kind;type:text;not null"`
	Status      string `gorm:"column:status;type:text;not null"`
	ResultPath  string `gorm:"column:result_path;type:text"`
	SummaryPath string `gorm:"column:summary_path;type:text"`
	StartedAt   string `gorm:"column:started_at;type:text;not null"`
	FinishedAt  string `gorm:"column:finished_at;type:text"`
}

func (AnalysisRun) TableName() string {
	return "analysis_runs"
}
