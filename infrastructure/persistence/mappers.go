package persistence

import (
	"github.com/shopspring/decimal"

	"github.com/meterlab/meterlab/domain/inventory"
	"github.com/meterlab/meterlab/domain/preferences"
)

// RecordMapper maps between domain Record and persistence RecordModel.
type RecordMapper struct{}

// ToDomain converts a RecordModel to a domain Record.
func (m RecordMapper) ToDomain(e RecordModel) inventory.Record {
	unitCost, err := decimal.NewFromString(e.UnitCost)
	if err != nil {
		// Rows converted from older databases can hold junk here.
		unitCost = decimal.Zero
	}

	fields := inventory.RecordFields{
		Status:    e.Status,
		MFR:       e.MFR,
		DevCode:   e.DevCode,
		BegSer:    e.BegSer,
		EndSer:    e.EndSer,
		OORSerial: e.OORSerial,
		Qty:       e.Qty,
		PODate:    e.PODate,
		PONumber:  e.PONumber,
		RecvDate:  e.RecvDate,
		UnitCost:  unitCost,
		CID:       e.CID,
		MENumber:  e.MENumber,
		PurCode:   e.PurCode,
		Est:       e.Est,
		Use:       e.Use,
		Notes1:    e.Notes1,
		Notes2:    e.Notes2,
	}

	return inventory.ReconstructRecord(
		e.ID,
		inventory.ReconstructSheet(e.OpCo, e.DeviceType),
		fields,
		e.CreatedAt,
		e.UpdatedAt,
	)
}

// ToModel converts a domain Record to a RecordModel.
func (m RecordMapper) ToModel(r inventory.Record) RecordModel {
	return RecordModel{
		ID:         r.ID(),
		OpCo:       r.Sheet().OpCo(),
		DeviceType: r.Sheet().DeviceType(),
		Status:     r.Status(),
		MFR:        r.MFR(),
		DevCode:    r.DevCode(),
		BegSer:     r.BegSer(),
		EndSer:     r.EndSer(),
		OORSerial:  r.OORSerial(),
		Qty:        r.Qty(),
		PODate:     r.PODate(),
		PONumber:   r.PONumber(),
		RecvDate:   r.RecvDate(),
		UnitCost:   r.UnitCost().String(),
		CID:        r.CID(),
		MENumber:   r.MENumber(),
		PurCode:    r.PurCode(),
		Est:        r.Est(),
		Use:        r.Use(),
		Notes1:     r.Notes1(),
		Notes2:     r.Notes2(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

// PreferenceMapper maps between domain Preference and persistence PreferenceModel.
type PreferenceMapper struct{}

// ToDomain converts a PreferenceModel to a domain Preference.
func (m PreferenceMapper) ToDomain(e PreferenceModel) preferences.Preference {
	return preferences.ReconstructPreference(e.Key, e.Value, e.UpdatedAt)
}

// ToModel converts a domain Preference to a PreferenceModel.
func (m PreferenceMapper) ToModel(p preferences.Preference) PreferenceModel {
	return PreferenceModel{
		Key:       p.Key(),
		Value:     p.Value(),
		UpdatedAt: p.UpdatedAt(),
	}
}
