package domain

// Card is one issued bank card. ID is assigned by the repository on
// creation and stable for the record's lifetime; Number and PIN never
// change after issuance. Balance is in the smallest currency unit.
type Card struct {
	ID      int64
	Number  string
	PIN     string
	Balance int64
}

type CardRepository interface {
	Create(number, pin string) (int64, error)
	FindByNumber(number string) (*Card, error)
	FindByNumberAndPIN(number, pin string) (*Card, error)
	SetBalance(id int64, balance int64) error
	Delete(id int64) error
}
