// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package testinfra

import (
	"context"
	"fmt"
	"strings"
)

// Employee is one row of the employee fixture.
type Employee struct {
	Age                      int
	Attrition                string
	BusinessTravel           string
	Department               string
	DistanceFromHome         int
	EducationField           string
	EnvironmentSatisfaction  int
	Gender                   string
	JobRole                  string
	JobSatisfaction          int
	MaritalStatus            string
	MonthlyIncome            int
	OverTime                 string
	RelationshipSatisfaction int
	TotalWorkingYears        int
	WorkLifeBalance          int
	YearsAtCompany           int
}

// Employees is a small deterministic dataset with three leavers out of ten.
//
//	department:  Sales 4 (2 left), Research & Development 5 (1 left), Human Resources 1 (0 left)
//	gender:      Male 6 (2 left), Female 4 (1 left)
//	income:      2000 to 16000
var Employees = []Employee{
	{25, "Yes", "Travel_Frequently", "Sales", 10, "Marketing", 1, "Male", "Sales Representative", 2, "Single", 2500, "Yes", 2, 3, 2, 1},
	{32, "No", "Travel_Rarely", "Sales", 5, "Marketing", 3, "Female", "Sales Executive", 3, "Married", 6000, "No", 3, 8, 3, 5},
	{45, "No", "Travel_Rarely", "Research & Development", 2, "Life Sciences", 4, "Male", "Research Scientist", 4, "Married", 9000, "No", 4, 20, 3, 10},
	{29, "Yes", "Non-Travel", "Research & Development", 20, "Medical", 2, "Female", "Laboratory Technician", 1, "Single", 3000, "Yes", 1, 5, 1, 2},
	{52, "No", "Travel_Rarely", "Research & Development", 1, "Life Sciences", 3, "Male", "Manager", 4, "Divorced", 15000, "No", 3, 30, 4, 20},
	{38, "No", "Non-Travel", "Human Resources", 8, "Human Resources", 3, "Female", "Human Resources", 3, "Married", 5000, "No", 4, 12, 3, 7},
	{22, "Yes", "Travel_Frequently", "Sales", 15, "Marketing", 1, "Male", "Sales Representative", 1, "Single", 2000, "Yes", 2, 1, 2, 0},
	{41, "No", "Travel_Rarely", "Research & Development", 3, "Medical", 4, "Female", "Research Scientist", 3, "Married", 7000, "No", 3, 15, 3, 10},
	{60, "No", "Travel_Rarely", "Sales", 4, "Marketing", 2, "Male", "Manager", 2, "Married", 16000, "No", 3, 35, 3, 25},
	{35, "No", "Travel_Rarely", "Research & Development", 6, "Life Sciences", 3, "Male", "Laboratory Technician", 3, "Divorced", 4000, "No", 2, 10, 3, 5},
}

const employeesTableDDL = `CREATE TABLE hr_employees_v (
    age INTEGER,
    attrition VARCHAR,
    business_travel VARCHAR,
    department VARCHAR,
    distance_from_home INTEGER,
    education_field VARCHAR,
    environment_satisfaction INTEGER,
    gender VARCHAR,
    job_role VARCHAR,
    job_satisfaction INTEGER,
    marital_status VARCHAR,
    monthly_income INTEGER,
    over_time VARCHAR,
    relationship_satisfaction INTEGER,
    total_working_years INTEGER,
    work_life_balance INTEGER,
    years_at_company INTEGER
)`

// EmployeeFixtureStatements returns the statements that create and fill
// hr_employees_v with Employees. They run unchanged on DuckDB and Postgres.
func EmployeeFixtureStatements() []string {
	values := make([]string, 0, len(Employees))
	for _, e := range Employees {
		values = append(values, fmt.Sprintf("(%d, %s, %s, %s, %d, %s, %d, %s, %s, %d, %s, %d, %s, %d, %d, %d, %d)",
			e.Age, quote(e.Attrition), quote(e.BusinessTravel), quote(e.Department), e.DistanceFromHome,
			quote(e.EducationField), e.EnvironmentSatisfaction, quote(e.Gender), quote(e.JobRole),
			e.JobSatisfaction, quote(e.MaritalStatus), e.MonthlyIncome, quote(e.OverTime),
			e.RelationshipSatisfaction, e.TotalWorkingYears, e.WorkLifeBalance, e.YearsAtCompany))
	}
	return []string{
		employeesTableDDL,
		"INSERT INTO hr_employees_v VALUES\n" + strings.Join(values, ",\n"),
	}
}

// SeedEmployees runs EmployeeFixtureStatements through exec.
func SeedEmployees(ctx context.Context, exec func(ctx context.Context, stmt string) error) error {
	for _, stmt := range EmployeeFixtureStatements() {
		if err := exec(ctx, stmt); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}
	return nil
}

// EmployeesCSV renders Employees in the IBM HR dataset's CSV layout.
func EmployeesCSV() string {
	var b strings.Builder
	b.WriteString("Age,Attrition,BusinessTravel,Department,DistanceFromHome,EducationField,EnvironmentSatisfaction,Gender,JobRole,JobSatisfaction,MaritalStatus,MonthlyIncome,OverTime,RelationshipSatisfaction,TotalWorkingYears,WorkLifeBalance,YearsAtCompany\n")
	for _, e := range Employees {
		fmt.Fprintf(&b, "%d,%s,%s,%s,%d,%s,%d,%s,%s,%d,%s,%d,%s,%d,%d,%d,%d\n",
			e.Age, e.Attrition, e.BusinessTravel, e.Department, e.DistanceFromHome,
			e.EducationField, e.EnvironmentSatisfaction, e.Gender, e.JobRole,
			e.JobSatisfaction, e.MaritalStatus, e.MonthlyIncome, e.OverTime,
			e.RelationshipSatisfaction, e.TotalWorkingYears, e.WorkLifeBalance, e.YearsAtCompany)
	}
	return b.String()
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
