package usecase

import (
	"fmt"

	"ecourts_backend/internal/feature/causelist/domain/entity"
)

// maxJudges caps the judges listed for a complex.
const maxJudges = 10

var complexes = []entity.Complex{
	{Code: "NDC", Name: "New Delhi Courts Complex"},
	{Code: "CDC", Name: "Central Delhi Courts"},
	{Code: "EDC", Name: "East Delhi Courts"},
	{Code: "WDC", Name: "West Delhi Courts"},
	{Code: "SDC", Name: "South Delhi Courts"},
	{Code: "NDDC", Name: "North Delhi Courts"},
}

var judges = []entity.Judge{
	{Code: "J01", Name: "Hon'ble Sh. Rajesh Kumar", CourtRoom: "Court Room 1"},
	{Code: "J02", Name: "Hon'ble Smt. Priya Sharma", CourtRoom: "Court Room 2"},
	{Code: "J03", Name: "Hon'ble Sh. Amit Singh", CourtRoom: "Court Room 3"},
	{Code: "J04", Name: "Hon'ble Ms. Neha Gupta", CourtRoom: "Court Room 4"},
	{Code: "J05", Name: "Hon'ble Sh. Vikram Jain", CourtRoom: "Court Room 5"},
	{Code: "J06", Name: "Hon'ble Smt. Kavita Mehta", CourtRoom: "Court Room 6"},
}

// Complexes returns the court complexes.
func Complexes() []entity.Complex {
	return append([]entity.Complex(nil), complexes...)
}

// FindComplex returns the complex with code.
func FindComplex(code string) (entity.Complex, error) {
	for _, c := range complexes {
		if c.Code == code {
			return c, nil
		}
	}
	return entity.Complex{}, fmt.Errorf("%w: %q", ErrUnknownComplex, code)
}

// Judges returns the judges sitting in the complex. Every complex shares the same roster.
func Judges(complexCode string) ([]entity.Judge, error) {
	if _, err := FindComplex(complexCode); err != nil {
		return nil, err
	}
	n := min(len(judges), maxJudges)
	return append([]entity.Judge(nil), judges[:n]...), nil
}

func findJudge(complexCode, code string) (entity.Judge, error) {
	list, err := Judges(complexCode)
	if err != nil {
		return entity.Judge{}, err
	}
	for _, j := range list {
		if j.Code == code {
			return j, nil
		}
	}
	return entity.Judge{}, fmt.Errorf("%w: %q", ErrUnknownJudge, code)
}
