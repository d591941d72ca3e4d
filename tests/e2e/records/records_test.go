//go:build e2e

package records_test

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"washbook/internal/domain/user"
	resdto "washbook/internal/handler/dto/response"
	"washbook/tests/common/dbtest"
	"washbook/tests/common/httptest"
	"washbook/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	recordsURL     = "/api/records"
	cashClosingURL = "/api/records/cierre-caja"
	commissionsURL = "/api/washers/comisiones"
)

type recordsSuite struct {
	e2e.SharedSuite

	token     string
	userID    int64
	washerID  int64
	serviceID int64
}

func TestRecordsSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(recordsSuite))
}

func (s *recordsSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.userID = dbtest.CreateTestUser(t, s.DB, "secretaria@lavadero.com", string(user.RoleClerk))
	s.washerID = dbtest.CreateTestWasher(t, s.DB, "Juan", "Pérez")
	s.serviceID = dbtest.CreateTestService(t, s.DB, "Lavado Premium", "car", 35000)
	s.token = s.Login(t, "secretaria@lavadero.com")
}

func (s *recordsSuite) createRecord(t *testing.T, body map[string]any) int64 {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, recordsURL, body, s.token)

	var resp resdto.CreateRecordResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &resp)
	require.NotZero(t, resp.ID)
	return resp.ID
}

func (s *recordsSuite) recordBody(cost, pct int64, payment string) map[string]any {
	return map[string]any{
		"vehiculo":    "car",
		"placa":       "ABC123",
		"id_servicio": s.serviceID,
		"costo":       cost,
		"porcentaje":  pct,
		"id_lavador":  s.washerID,
		"pago":        payment,
	}
}

// insertRow writes a paid ledger row straight to the database so the date and
// time are under the test's control instead of the server clock's.
func (s *recordsSuite) insertRow(t *testing.T, date, timeOfDay string) {
	t.Helper()

	dbtest.CreateTestRecord(t, s.DB, dbtest.RecordRow{
		Date:          date,
		Time:          timeOfDay,
		VehicleType:   "car",
		Plate:         "ABC123",
		ServiceID:     s.serviceID,
		Cost:          25000,
		Percentage:    40,
		WasherID:      s.washerID,
		WasherName:    "Juan Pérez",
		PaymentStatus: "Pagado",
		UserID:        s.userID,
	})
}

func (s *recordsSuite) listRecords(t *testing.T) resdto.RecordListResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)
	var resp resdto.RecordListResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	return resp
}

func (s *recordsSuite) TestCreateAndList() {
	s.Run("created record shows up in the listing with server-side stamp", func() {
		t := s.T()
		s.createRecord(t, s.recordBody(25000, 40, "Pagado"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 1)

		got := resp.Records[0]
		require.Equal(t, "car", got.VehicleType)
		require.Equal(t, "Automóvil", got.VehicleLabel)
		require.Equal(t, "Juan Pérez", got.WasherName)
		require.Equal(t, "Lavado Premium", *got.ServiceName)
		require.Equal(t, "Pagado", got.PaymentStatus)
		require.NotEmpty(t, got.Date)
		require.NotEmpty(t, got.Time)
		require.InEpsilon(t, 25000.0, got.Cost, 1e-9)
	})

	s.Run("payment defaults to pending when omitted", func() {
		t := s.T()
		body := s.recordBody(25000, 40, "")
		delete(body, "pago")
		s.createRecord(t, body)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "Pendiente", resp.Records[0].PaymentStatus)
	})

	s.Run("unknown washer is a 404", func() {
		t := s.T()
		body := s.recordBody(25000, 40, "Pagado")
		body["id_lavador"] = 99999

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, recordsURL, body, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Lavador no encontrado")
	})

	s.Run("unknown service is a 404", func() {
		t := s.T()
		body := s.recordBody(25000, 40, "Pagado")
		body["id_servicio"] = 88888

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, recordsURL, body, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Servicio no encontrado")
	})

	s.Run("plate filter matches partially and case-insensitively", func() {
		t := s.T()
		s.createRecord(t, s.recordBody(25000, 40, "Pagado"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL+"?placa=abc", nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL+"?placa=zzz", nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	})

	s.Run("listing is ordered by date then time, newest first", func() {
		t := s.T()
		s.insertRow(t, "2026-03-10", "09:00:00")
		s.insertRow(t, "2026-03-11", "08:00:00")
		s.insertRow(t, "2026-03-10", "18:00:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 3)
		require.Equal(t, "2026-03-11", resp.Records[0].Date)
		require.Equal(t, "18:00:00", resp.Records[1].Time)
		require.Equal(t, "09:00:00", resp.Records[2].Time)
	})

	s.Run("single-day range is inclusive of both bounds", func() {
		t := s.T()
		s.insertRow(t, "2026-03-09", "10:00:00")
		s.insertRow(t, "2026-03-10", "10:00:00")
		s.insertRow(t, "2026-03-11", "10:00:00")

		url := recordsURL + "?fecha_inicio=2026-03-10&fecha_fin=2026-03-10"
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "2026-03-10", resp.Records[0].Date)
	})

	s.Run("range filter applies only when both bounds are sent", func() {
		t := s.T()
		s.insertRow(t, "2026-03-09", "10:00:00")
		s.insertRow(t, "2026-03-10", "10:00:00")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			recordsURL+"?fecha_inicio=2026-03-10", nil, s.token)

		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 2)
	})

	s.Run("requests without a token are rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, recordsURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *recordsSuite) TestUpdateAndDelete() {
	s.Run("update changes payment status and amounts", func() {
		t := s.T()
		id := s.createRecord(t, s.recordBody(25000, 40, "Pendiente"))

		update := map[string]any{"costo": 30000, "porcentaje": 50, "pago": "Pagado"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, recordsURL+"/"+itoa(id), update, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)
		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "Pagado", resp.Records[0].PaymentStatus)
		require.InEpsilon(t, 30000.0, resp.Records[0].Cost, 1e-9)
	})

	s.Run("updating a missing record is a 404", func() {
		t := s.T()
		update := map[string]any{"costo": 30000, "porcentaje": 50}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, recordsURL+"/424242", update, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Registro no encontrado")
	})

	s.Run("deleted record disappears from the listing", func() {
		t := s.T()
		id := s.createRecord(t, s.recordBody(25000, 40, "Pagado"))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, recordsURL+"/"+itoa(id), nil, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, recordsURL, nil, s.token)
		var resp resdto.RecordListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Empty(t, resp.Records)
	})
}

func (s *recordsSuite) TestWasherSnapshot() {
	s.Run("snapshot name survives washer rename and deactivation", func() {
		t := s.T()
		s.createRecord(t, s.recordBody(25000, 40, "Pagado"))

		_, err := s.DB.Exec(context.Background(),
			`UPDATE washers SET first_name = 'Carlos', last_name = 'Nuevo', is_active = false
			 WHERE id = $1`, s.washerID)
		require.NoError(t, err)

		resp := s.listRecords(t)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "Juan Pérez", resp.Records[0].WasherName)
	})

	s.Run("literal name overwrites the snapshot without id validation", func() {
		t := s.T()
		id := s.createRecord(t, s.recordBody(25000, 40, "Pagado"))

		update := map[string]any{"costo": 25000, "porcentaje": 40, "lavador": "Nombre Corregido"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, recordsURL+"/"+itoa(id), update, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		resp := s.listRecords(t)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "Nombre Corregido", resp.Records[0].WasherName)
	})

	s.Run("washer id re-resolves the name over a literal", func() {
		t := s.T()
		id := s.createRecord(t, s.recordBody(25000, 40, "Pagado"))
		second := dbtest.CreateTestWasher(t, s.DB, "Pedro", "Gómez")

		update := map[string]any{
			"costo":      25000,
			"porcentaje": 40,
			"id_lavador": second,
			"lavador":    "Cualquier Otro",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, recordsURL+"/"+itoa(id), update, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		resp := s.listRecords(t)
		require.Len(t, resp.Records, 1)
		require.Equal(t, "Pedro Gómez", resp.Records[0].WasherName)
	})
}

func (s *recordsSuite) TestCashClosingAndCommissions() {
	s.Run("closing figures cover paid records and track pending separately", func() {
		t := s.T()
		s.createRecord(t, s.recordBody(15000, 50, "Pagado"))
		s.createRecord(t, s.recordBody(30000, 40, "Pagado"))
		s.createRecord(t, s.recordBody(45000, 30, "Pagado"))
		s.createRecord(t, s.recordBody(8000, 50, "Pendiente"))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cashClosingURL, nil, s.token)

		var resp resdto.CashClosingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.InEpsilon(t, 90000.0, resp.GrossIncome, 1e-9)
		require.InEpsilon(t, 33000.0, resp.CommissionsPaid, 1e-9)
		require.InEpsilon(t, 57000.0, resp.NetProfit, 1e-9)
		require.Equal(t, 3, resp.PaidCount)
		require.InEpsilon(t, 30000.0, resp.AveragePerService, 1e-9)
		require.Equal(t, 1, resp.PendingCount)
		require.InEpsilon(t, 8000.0, resp.PendingAmount, 1e-9)
	})

	s.Run("empty day closes with zeros", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, cashClosingURL+"?fecha=1999-01-01", nil, s.token)

		var resp resdto.CashClosingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Equal(t, "1999-01-01", resp.Date)
		require.Zero(t, resp.GrossIncome)
		require.Zero(t, resp.PaidCount)
	})

	s.Run("commission breakdown reconciles with the day's ledger", func() {
		t := s.T()
		second := dbtest.CreateTestWasher(t, s.DB, "Pedro", "Gómez")

		s.createRecord(t, s.recordBody(10000, 50, "Pagado"))
		s.createRecord(t, s.recordBody(20000, 50, "Pagado"))
		other := s.recordBody(30000, 40, "Pagado")
		other["id_lavador"] = second
		s.createRecord(t, other)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, commissionsURL, nil, s.token)

		var resp resdto.CommissionsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
		require.Len(t, resp.Washers, 2)
		require.Equal(t, 3, resp.Totals.Services)
		require.InEpsilon(t, 27000.0, resp.Totals.Commissions, 1e-9)

		// Ranked by commission: Juan 15000 over Pedro 12000.
		require.Equal(t, "Juan Pérez", resp.Washers[0].Name)
		require.InEpsilon(t, 15000.0, resp.Washers[0].TotalCommission, 1e-9)
		require.Equal(t, "Pedro Gómez", resp.Washers[1].Name)
		require.InEpsilon(t, 12000.0, resp.Washers[1].TotalCommission, 1e-9)
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
