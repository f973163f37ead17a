package domain

// GrowthKeyword is a curated tag attached to booths and learning records
type GrowthKeyword struct {
	BaseModel
	Name      string  `gorm:"type:varchar(50);not null;uniqueIndex:uq_growth_keywords_name" json:"name"`
	NameEn    *string `gorm:"type:varchar(50)" json:"nameEn"`
	SortOrder int     `gorm:"not null;default:0;index:idx_growth_keywords_sort_order" json:"sortOrder"`
	IsActive  bool    `gorm:"not null;default:true" json:"isActive"`
}

// TableName specifies the table name for GrowthKeyword
func (GrowthKeyword) TableName() string {
	return "growth_keywords"
}

// DefaultKeywords are seeded into an empty keyword table on startup
func DefaultKeywords() []GrowthKeyword {
	en := func(s string) *string { return &s }
	return []GrowthKeyword{
		{Name: "기획", NameEn: en("Planning"), SortOrder: 1, IsActive: true},
		{Name: "실행", NameEn: en("Execution"), SortOrder: 2, IsActive: true},
		{Name: "협업", NameEn: en("Collaboration"), SortOrder: 3, IsActive: true},
		{Name: "도전", NameEn: en("Challenge"), SortOrder: 4, IsActive: true},
		{Name: "성찰", NameEn: en("Reflection"), SortOrder: 5, IsActive: true},
	}
}
