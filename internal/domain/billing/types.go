package billing

import (
	"errors"
	"strings"
)

var (
	ErrInvalidViolationType = errors.New("invalid violation type")
	ErrInvalidTargetType    = errors.New("invalid payment target type")
	ErrInvalidMethod        = errors.New("invalid payment method")
)

// PaymentStatus is shared by every billable entity.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type ViolationType string

const (
	ViolationOverstay     ViolationType = "OVERSTAY"
	ViolationNoShow       ViolationType = "NO_SHOW"
	ViolationUnpaidFee    ViolationType = "UNPAID_FEE"
	ViolationUnpaidFine   ViolationType = "UNPAID_FINE"
	ViolationUnauthorized ViolationType = "UNAUTHORIZED"
	ViolationOther        ViolationType = "OTHER"
)

func NewViolationType(s string) (ViolationType, error) {
	vt := ViolationType(strings.ToUpper(strings.TrimSpace(s)))
	switch vt {
	case ViolationOverstay, ViolationNoShow, ViolationUnpaidFee, ViolationUnpaidFine,
		ViolationUnauthorized, ViolationOther:
		return vt, nil
	default:
		return "", ErrInvalidViolationType
	}
}

type TargetType string

const (
	TargetSession     TargetType = "SESSION"
	TargetReservation TargetType = "RESERVATION"
	TargetViolation   TargetType = "VIOLATION"
)

func NewTargetType(s string) (TargetType, error) {
	tt := TargetType(strings.ToUpper(strings.TrimSpace(s)))
	switch tt {
	case TargetSession, TargetReservation, TargetViolation:
		return tt, nil
	default:
		return "", ErrInvalidTargetType
	}
}

type Method string

const (
	MethodWeChat     Method = "WECHAT"
	MethodAlipay     Method = "ALIPAY"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodWallet     Method = "WALLET"
	MethodCash       Method = "CASH"
)

func NewMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodWeChat, MethodAlipay, MethodCreditCard, MethodWallet, MethodCash:
		return m, nil
	default:
		return "", ErrInvalidMethod
	}
}
