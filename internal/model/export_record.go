package model

// swagger:model ExportRecord
type ExportRecord struct {
	UUIDBase
	AttemptID uint   `gorm:"index;not null" json:"attemptId"`
	ObjectKey string `gorm:"size:512;not null" json:"objectKey"`
	URL       string `gorm:"size:1024" json:"url"`
	Size      int64  `json:"size"`
}

func (ExportRecord) TableName() string {
	return "export_records"
}
