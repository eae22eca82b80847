package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		got, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRole("admin")
	assert.True(t, errors.Is(err, ErrInvalidRole))

	_, err = ParseRole("")
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestCan(t *testing.T) {
	tests := []struct {
		role Role
		cap  Capability
		want bool
	}{
		{RoleGovernment, CapExportData, true},
		{RoleGovernment, CapUseMarketplace, true},
		{RoleIndustry, CapRunSimulation, true},
		{RoleUrbanPlanner, CapRunSimulation, true},
		{RoleUrbanPlanner, CapUseMarketplace, false},
		{RoleCitizen, CapViewDashboard, true},
		{RoleCitizen, CapRunSimulation, false},
		{RoleCitizen, CapViewReports, false},
		{RoleRecycler, CapUseMarketplace, true},
		{RoleRecycler, CapViewIntelligence, false},
		{Role("admin"), CapViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+string(tt.cap), func(t *testing.T) {
			assert.Equal(t, tt.want, Can(tt.role, tt.cap))
		})
	}
}

func TestEveryRoleCanManageSettings(t *testing.T) {
	for _, r := range Roles() {
		assert.True(t, Can(r, CapManageSettings), r)
		assert.True(t, Can(r, CapViewDashboard), r)
	}
}

func TestCapabilitiesReturnsCopy(t *testing.T) {
	caps := RoleCitizen.Capabilities()
	require.NotEmpty(t, caps)
	caps[0] = CapExportData
	assert.False(t, Can(RoleCitizen, CapExportData))
}

func TestParseReportType(t *testing.T) {
	rt, err := ParseReportType("All")
	require.NoError(t, err)
	assert.Equal(t, ReportType(""), rt)

	rt, err = ParseReportType("Audit")
	require.NoError(t, err)
	assert.Equal(t, ReportAudit, rt)

	_, err = ParseReportType("Quarterly")
	assert.ErrorIs(t, err, ErrInvalidReportType)
}

func TestStatusSeverity(t *testing.T) {
	assert.Equal(t, 0, StatusGood.Severity())
	assert.Equal(t, 5, StatusHazardous.Severity())
	assert.Equal(t, -1, AQIStatus("Unknown").Severity())
}
