package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, models.StatusActive, statusFromWire(float64(1)))
	assert.Equal(t, models.StatusActive, statusFromWire("1"))
	assert.Equal(t, models.StatusInactive, statusFromWire(float64(0)))
	assert.Equal(t, models.StatusInactive, statusFromWire(nil))

	assert.Equal(t, "1", statusToWire(models.StatusActive))
	assert.Equal(t, "0", statusToWire(models.StatusInactive))
}

func TestSalaryRow_DateLayouts(t *testing.T) {
	r := salaryRow{ID: float64(3), EmployeeID: float64(5), SalDate: "2026-08-01", NetAmount: "950.50"}
	m := r.toModel()
	assert.Equal(t, int64(3), m.ID)
	assert.Equal(t, "5", m.EmployeeID)
	assert.Equal(t, "2026-08-01", m.Date.Format(wireDateLayout))
	assert.Equal(t, 950.50, m.NetAmount)

	rts := salaryRow{SalDate: "2026-08-01T00:00:00Z"}
	assert.Equal(t, "2026-08-01", rts.toModel().Date.Format(wireDateLayout))
}

func TestEmployeeRow_NeverCarriesPassword(t *testing.T) {
	r := employeeRow{ID: float64(5), Name: "Jo", Email: "jo@example.com", Salary: "1200"}
	assert.Empty(t, r.toModel().Password)
	assert.Equal(t, 1200.0, r.toModel().Salary)
}
