package domain

import (
	"fmt"
)

func adaAndBob() []Employee {
	return []Employee{
		{ID: "1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Department: "IT", Position: "Engineer", Salary: "5000", HireDate: "2020-01-01", IsActive: true},
		{ID: "2", FirstName: "Bob", LastName: "Stone", Email: "bob@example.com", Department: "HR", Position: "Recruiter", Salary: "4000", HireDate: "2021-06-15", IsActive: false},
	}
}

// numbered returns n employees with ids 1..n in department dept.
func numbered(n int, dept string) []Employee {
	result := make([]Employee, n)
	for i := range result {
		result[i] = Employee{
			ID:         fmt.Sprintf("%d", i+1),
			FirstName:  fmt.Sprintf("Person%02d", i+1),
			Department: dept,
			IsActive:   true,
		}
	}
	return result
}

func ids(employees []Employee) []string {
	result := make([]string, len(employees))
	for i, e := range employees {
		result[i] = e.ID
	}
	return result
}
