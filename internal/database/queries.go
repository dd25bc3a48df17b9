// Attrition - HR Attrition Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/attrition

package database

import (
	"fmt"
	"strings"
)

// Analytics queries against hr_employees_v. They are written in the SQL
// subset shared by Postgres and DuckDB. Values are bound as :name
// parameters; only allowlisted dimension columns are interpolated.

// attritionRate is the share of employees who left, rounded to 4 places.
const attritionRate = "ROUND(AVG(CASE WHEN attrition = 'Yes' THEN 1 ELSE 0 END), 4)"

// Dimensions lists the categorical columns accepted for grouping.
var Dimensions = []string{
	"department",
	"job_role",
	"education_field",
	"business_travel",
	"gender",
	"marital_status",
	"over_time",
}

// NumericFeatures lists the columns correlated against attrition.
var NumericFeatures = []string{
	"age",
	"monthly_income",
	"years_at_company",
	"total_working_years",
	"distance_from_home",
	"job_satisfaction",
	"environment_satisfaction",
	"relationship_satisfaction",
	"work_life_balance",
}

// IsDimension reports whether dim is an allowed grouping column.
func IsDimension(dim string) bool {
	for _, d := range Dimensions {
		if d == dim {
			return true
		}
	}
	return false
}

// HealthQuery is the lightweight liveness probe.
const HealthQuery = "SELECT 1 AS ok"

// SummaryQuery returns headcount, leavers and the overall rate.
const SummaryQuery = `
SELECT COUNT(*) AS n_total,
       CAST(SUM(CASE WHEN attrition = 'Yes' THEN 1 ELSE 0 END) AS BIGINT) AS n_left,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v`

// AttritionByQuery groups the attrition rate by one dimension.
func AttritionByQuery(dim string) (string, error) {
	if !IsDimension(dim) {
		return "", fmt.Errorf("invalid dimension %q", dim)
	}
	return `
SELECT ` + dim + ` AS key,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v
GROUP BY ` + dim + `
ORDER BY attrition_rate DESC, n DESC`, nil
}

// AttritionByTwoQuery crosses two distinct dimensions.
func AttritionByTwoQuery(dim1, dim2 string) (string, error) {
	if !IsDimension(dim1) {
		return "", fmt.Errorf("invalid dimension %q", dim1)
	}
	if !IsDimension(dim2) {
		return "", fmt.Errorf("invalid dimension %q", dim2)
	}
	if dim1 == dim2 {
		return "", fmt.Errorf("dimensions must differ, got %q twice", dim1)
	}
	return `
SELECT ` + dim1 + ` AS k1,
       ` + dim2 + ` AS k2,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v
GROUP BY 1, 2
ORDER BY 1, 2`, nil
}

// AgeDistributionQuery buckets ages the way width_bucket does: 0 below
// :min_age, :buckets+1 at or above :max_age, equal-width buckets between.
const AgeDistributionQuery = `
SELECT CASE
         WHEN age < CAST(:min_age AS INTEGER) THEN 0
         WHEN age >= CAST(:max_age AS INTEGER) THEN CAST(:buckets AS INTEGER) + 1
         ELSE CAST(FLOOR(CAST(age - CAST(:min_age AS INTEGER) AS DOUBLE PRECISION) * CAST(:buckets AS INTEGER)
                   / (CAST(:max_age AS INTEGER) - CAST(:min_age AS INTEGER))) AS INTEGER) + 1
       END AS bucket,
       MIN(age) AS min_age,
       MAX(age) AS max_age,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v
WHERE age IS NOT NULL
GROUP BY 1
ORDER BY 1`

// IncomeDistributionQuery splits the observed income range into :buckets
// equal-width bins. The maximum income lands in the last bin.
const IncomeDistributionQuery = `
WITH bounds AS (
    SELECT MIN(monthly_income) AS lo, MAX(monthly_income) AS hi
    FROM hr_employees_v
    WHERE monthly_income IS NOT NULL
),
binned AS (
    SELECT e.monthly_income,
           e.attrition,
           LEAST(
               CAST(FLOOR(CAST(e.monthly_income - b.lo AS DOUBLE PRECISION) * CAST(:buckets AS INTEGER)
                          / COALESCE(NULLIF(b.hi - b.lo, 0), 1)) AS INTEGER) + 1,
               CAST(:buckets AS INTEGER)
           ) AS bucket
    FROM hr_employees_v e
    CROSS JOIN bounds b
    WHERE e.monthly_income IS NOT NULL
)
SELECT bucket,
       MIN(monthly_income) AS min_income,
       MAX(monthly_income) AS max_income,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM binned
GROUP BY bucket
ORDER BY bucket`

// TenureCurveQuery returns the rate per year at the company.
const TenureCurveQuery = `
SELECT years_at_company,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v
WHERE years_at_company IS NOT NULL
  AND years_at_company <= CAST(:max_years AS INTEGER)
GROUP BY years_at_company
ORDER BY years_at_company`

// CorrelationQuery returns the Pearson correlation between leaving and each
// numeric feature, in NumericFeatures order.
var CorrelationQuery = buildCorrelationQuery(NumericFeatures)

func buildCorrelationQuery(features []string) string {
	var b strings.Builder
	b.WriteString(`
WITH base AS (
    SELECT *, CAST(CASE WHEN attrition = 'Yes' THEN 1 ELSE 0 END AS DOUBLE PRECISION) AS left_flag
    FROM hr_employees_v
)
SELECT feature, corr FROM (`)
	for i, f := range features {
		if i > 0 {
			b.WriteString("\n    UNION ALL")
		}
		fmt.Fprintf(&b, "\n    SELECT %d AS ord, '%s' AS feature, CAST(corr(CAST(%s AS DOUBLE PRECISION), left_flag) AS DECIMAL(10, 4)) AS corr FROM base", i, f, f)
	}
	b.WriteString("\n) c\nORDER BY ord")
	return b.String()
}

// IncomeByRoleQuery returns the five-number summary of monthly income per role.
const IncomeByRoleQuery = `
SELECT job_role,
       MIN(monthly_income) AS min,
       percentile_cont(0.25) WITHIN GROUP (ORDER BY monthly_income) AS q1,
       percentile_cont(0.5) WITHIN GROUP (ORDER BY monthly_income) AS median,
       percentile_cont(0.75) WITHIN GROUP (ORDER BY monthly_income) AS q3,
       MAX(monthly_income) AS max
FROM hr_employees_v
WHERE monthly_income IS NOT NULL
GROUP BY job_role
ORDER BY median DESC`

// AgeIncomeScatterQuery returns up to :row_limit points.
const AgeIncomeScatterQuery = `
SELECT age,
       monthly_income,
       CASE WHEN attrition = 'Yes' THEN 1 ELSE 0 END AS left_flag
FROM hr_employees_v
WHERE age IS NOT NULL
  AND monthly_income IS NOT NULL
ORDER BY age, monthly_income
LIMIT CAST(:row_limit AS INTEGER)`

// SatisfactionRadarQuery compares mean satisfaction scores of leavers and stayers.
const SatisfactionRadarQuery = `
SELECT CASE WHEN attrition = 'Yes' THEN 'Left' ELSE 'Stayed' END AS group_name,
       ROUND(AVG(environment_satisfaction), 3) AS environment,
       ROUND(AVG(job_satisfaction), 3) AS job,
       ROUND(AVG(relationship_satisfaction), 3) AS relationship,
       ROUND(AVG(work_life_balance), 3) AS work_life
FROM hr_employees_v
GROUP BY 1
ORDER BY 1`

// GenderQuery returns headcount and rate per gender.
const GenderQuery = `
SELECT gender,
       COUNT(*) AS n,
       ` + attritionRate + ` AS attrition_rate
FROM hr_employees_v
GROUP BY gender
ORDER BY n DESC`
