package domain

import "fmt"

type CustomerTier string

const (
	CustomerTierRegular  CustomerTier = "REGULAR"
	CustomerTierSilver   CustomerTier = "SILVER"
	CustomerTierGold     CustomerTier = "GOLD"
	CustomerTierPlatinum CustomerTier = "PLATINUM"
	CustomerTierPremium  CustomerTier = "PREMIUM"
)

func (t CustomerTier) Valid() bool {
	switch t {
	case CustomerTierRegular, CustomerTierSilver, CustomerTierGold, CustomerTierPlatinum, CustomerTierPremium:
		return true
	}
	return false
}

func ParseCustomerTier(s string) (CustomerTier, error) {
	t := CustomerTier(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown customer tier %q", ErrValidation, s)
	}
	return t, nil
}

type User struct {
	ID    int64        `json:"id"`
	Name  string       `json:"name"`
	Email string       `json:"email"`
	Tier  CustomerTier `json:"tier"`
}
