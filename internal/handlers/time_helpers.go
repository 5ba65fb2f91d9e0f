package handlers

import "time"

const dateLayout = "2006-01-02"

// Las fechas de reservas y pagos son fechas planas, sin hora ni zona.
func parseFecha(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
