package domain

// AddressType задаёт назначение адреса (доставка или выставление счёта)
type AddressType string

const (
	AddressShipping AddressType = "SHP"
	AddressBilling  AddressType = "BIL"
)

// Address описывает адрес пользователя
type Address struct {
	ID        int64
	UserID    int64
	Type      AddressType
	Line1     string
	Line2     string
	City      string
	State     string
	Country   string
	IsDefault bool
}

func NewAddress(userID int64, addrType AddressType, line1, line2, city, state, country string) *Address {
	return &Address{
		UserID:  userID,
		Type:    addrType,
		Line1:   line1,
		Line2:   line2,
		City:    city,
		State:   state,
		Country: country,
	}
}
