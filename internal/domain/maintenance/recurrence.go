// Package maintenance contiene los servicios de dominio del mantenimiento
// preventivo: el cálculo de recurrencia y el reloj de calendario.
package maintenance

import "time"

// NextRun calcula la próxima fecha de ejecución de un plan preventivo a partir
// de la última ejecución. Es la única fuente de verdad de la recurrencia:
// cualquier aritmética de fechas duplicada fuera de acá es un bug.
//
//   - DIARIA:  lastRun + value días
//   - SEMANAL: lastRun + value semanas
//   - MENSUAL: lastRun + 30×value días (aproximación fija de 30 días; el
//     corrimiento entre meses es política aceptada, no un defecto)
//   - ANUAL:   lastRun + 365×value días (sin ajuste por bisiestos)
//
// Una frecuencia desconocida cae al caso diario en lugar de fallar, para que
// el barrido nunca aborte un lote por un registro malo.
func NextRun(lastRun time.Time, frequencyType string, frequencyValue int) time.Time {
	switch frequencyType {
	case "DIARIA":
		return lastRun.AddDate(0, 0, frequencyValue)
	case "SEMANAL":
		return lastRun.AddDate(0, 0, 7*frequencyValue)
	case "MENSUAL":
		return lastRun.AddDate(0, 0, 30*frequencyValue)
	case "ANUAL":
		return lastRun.AddDate(0, 0, 365*frequencyValue)
	}
	return lastRun.AddDate(0, 0, frequencyValue)
}

// Clock abstrae el "hoy" del calendario para que el barrido sea testeable con
// fechas fijas.
type Clock interface {
	Today() time.Time
}

// SystemClock implementa Clock con la hora del sistema, truncada a fecha (UTC).
type SystemClock struct{}

// Today devuelve la fecha de hoy a medianoche UTC.
func (SystemClock) Today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
