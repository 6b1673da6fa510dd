package inventory

import "github.com/meterlab/meterlab/domain/store"

// WithOpCo filters by the "op_co" column.
func WithOpCo(opCo string) store.Option {
	return store.WithCondition("op_co", opCo)
}

// WithDeviceType filters by the "device_type" column.
func WithDeviceType(deviceType string) store.Option {
	return store.WithCondition("device_type", deviceType)
}

// WithSheet scopes a query to a single sheet (operating company plus
// device type).
func WithSheet(sheet Sheet) store.Option {
	return func(q store.Query) store.Query {
		q = WithOpCo(sheet.OpCo())(q)
		return WithDeviceType(sheet.DeviceType())(q)
	}
}

// WithDevCode filters by substring match on the "dev_code" column.
func WithDevCode(code string) store.Option {
	return store.WithWhere("dev_code LIKE ?", "%"+code+"%")
}

// WithPONumber filters by substring match on the "po_number" column.
func WithPONumber(poNumber string) store.Option {
	return store.WithWhere("po_number LIKE ?", "%"+poNumber+"%")
}

// WithRecvDate filters by exact match on the "recv_date" column.
func WithRecvDate(date string) store.Option {
	return store.WithCondition("recv_date", date)
}

// WithOrderByID orders records by id descending, so the most recently
// added rows come back first.
func WithOrderByID() store.Option {
	return store.WithOrderDesc("id")
}

// WithOrderByRecvDate orders records by received date descending.
func WithOrderByRecvDate() store.Option {
	return store.WithOrderDesc("recv_date")
}
