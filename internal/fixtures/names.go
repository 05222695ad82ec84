package fixtures

import "github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"

// ==========================================
// NAME POOLS
// ==========================================

// MaleNames are drawn for employees generated as male.
var MaleNames = []string{"Jan", "Petr", "Tomáš", "Jakub", "Karel"}

// FemaleNames are drawn for employees generated as female.
var FemaleNames = []string{"Jana", "Anna", "Petra", "Lucie", "Kateřina"}

// Surnames are shared by both genders.
var Surnames = []string{"Novák", "Svoboda", "Dvořák", "Černý", "Procházka"}

// NamePools groups the given-name pools by gender with the shared surnames.
type NamePools struct {
	Given    map[employee.Gender][]string
	Surnames []string
}

// DefaultNamePools returns the built-in pools.
func DefaultNamePools() NamePools {
	return NamePools{
		Given: map[employee.Gender][]string{
			employee.Male:   MaleNames,
			employee.Female: FemaleNames,
		},
		Surnames: Surnames,
	}
}

// Complete reports whether every pool the generator draws from is non-empty.
func (p NamePools) Complete() bool {
	return len(p.Given[employee.Male]) > 0 &&
		len(p.Given[employee.Female]) > 0 &&
		len(p.Surnames) > 0
}
