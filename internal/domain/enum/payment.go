package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentType represents how a purchase was paid for
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeCredit   PaymentType = "credit"
	PaymentTypeTransfer PaymentType = "transfer"
)

func (t PaymentType) String() string {
	return string(t)
}

// IsValid reports whether the payment type is one of the known values
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCash, PaymentTypeCredit, PaymentTypeTransfer:
		return true
	}
	return false
}

func (t PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PaymentType(str)
	return nil
}

func (t PaymentType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*t = PaymentTypeCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = PaymentType(v)
	case []byte:
		*t = PaymentType(string(v))
	}
	return nil
}

// PaymentStatus represents how much of a purchase has been settled
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// PaymentStatusFor derives the payment status from total and paid amounts
func PaymentStatusFor(total, paid float64) PaymentStatus {
	switch {
	case paid <= 0 && total > 0:
		return PaymentStatusUnpaid
	case paid < total:
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentStatus(str)
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(string(v))
	}
	return nil
}
