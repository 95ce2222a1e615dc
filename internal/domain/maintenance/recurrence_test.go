package maintenance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/gmao-pro/internal/domain/maintenance"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestNextRun_Frecuencias(t *testing.T) {
	base := fecha(2025, time.March, 10)

	casos := []struct {
		nombre    string
		tipo      string
		valor     int
		esperada  time.Time
	}{
		{"diaria x5", "DIARIA", 5, fecha(2025, time.March, 15)},
		{"semanal x2 son 14 dias", "SEMANAL", 2, fecha(2025, time.March, 24)},
		{"mensual x1 son 30 dias fijos", "MENSUAL", 1, fecha(2025, time.April, 9)},
		{"anual x1 son 365 dias fijos", "ANUAL", 1, fecha(2026, time.March, 10)},
		{"frecuencia desconocida cae al caso diario", "QUINCENAL", 3, fecha(2025, time.March, 13)},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperada, maintenance.NextRun(base, c.tipo, c.valor))
		})
	}
}

// 2024 es bisiesto: ANUAL suma 365 días fijos, sin ajuste por el 29 de febrero.
func TestNextRun_AnualSinAjusteBisiesto(t *testing.T) {
	got := maintenance.NextRun(fecha(2024, time.January, 1), "ANUAL", 1)
	assert.Equal(t, fecha(2024, time.December, 31), got)
}

// MENSUAL es una aproximación de 30 días: desde el 31 de enero no "aterriza"
// a fin de febrero sino que corre 30 días exactos.
func TestNextRun_MensualAproximacionFija(t *testing.T) {
	got := maintenance.NextRun(fecha(2025, time.January, 31), "MENSUAL", 1)
	assert.Equal(t, fecha(2025, time.March, 2), got)
}

func TestSystemClock_TruncaAFecha(t *testing.T) {
	today := maintenance.SystemClock{}.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, time.UTC, today.Location())
}
