package persistence

import "time"

// RecordModel represents an inventory receiving record in the database.
type RecordModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OpCo       string    `gorm:"column:op_co;size:255;not null;index:idx_records_sheet,priority:1"`
	DeviceType string    `gorm:"column:device_type;size:255;not null;index:idx_records_sheet,priority:2"`
	Status     string    `gorm:"column:status;size:255"`
	MFR        string    `gorm:"column:mfr;size:255"`
	DevCode    string    `gorm:"column:dev_code;size:255;index"`
	BegSer     string    `gorm:"column:beg_ser;size:255"`
	EndSer     string    `gorm:"column:end_ser;size:255"`
	OORSerial  string    `gorm:"column:oor_serial;type:text"`
	Qty        int       `gorm:"column:qty;not null;default:0"`
	PODate     string    `gorm:"column:po_date;size:255"`
	PONumber   string    `gorm:"column:po_number;size:255;index"`
	RecvDate   string    `gorm:"column:recv_date;size:255;index"`
	UnitCost   string    `gorm:"column:unit_cost;size:64;not null"`
	CID        string    `gorm:"column:cid;size:255"`
	MENumber   string    `gorm:"column:me_number;size:255"`
	PurCode    string    `gorm:"column:pur_code;size:255"`
	Est        string    `gorm:"column:est;size:255"`
	Use        string    `gorm:"column:use;size:255"`
	Notes1     string    `gorm:"column:notes1;type:text"`
	Notes2     string    `gorm:"column:notes2;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (RecordModel) TableName() string {
	return "inventory_records"
}

// PreferenceModel represents a stored user preference in the database.
type PreferenceModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Key       string    `gorm:"column:preference_key;size:255;not null;uniqueIndex"`
	Value     string    `gorm:"column:preference_value;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (PreferenceModel) TableName() string {
	return "user_preferences"
}
