package employee

import (
	"time"
)

type Employee struct {
	Gender    Gender    `json:"gender"`
	Birthdate time.Time `json:"birthdate"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Workload  Workload  `json:"workload"`
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Workload is the percent-time tier of an employee.
type Workload int

const (
	Workload10 Workload = 10
	Workload20 Workload = 20
	Workload30 Workload = 30
	Workload40 Workload = 40
)

// Workloads lists the tiers in ascending order.
var Workloads = []Workload{Workload10, Workload20, Workload30, Workload40}
