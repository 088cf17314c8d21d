package healthrecords

import "time"

// Record es una visita médica de una mascota. VisitDate es una fecha
// (el store la guarda como DATE, medianoche UTC).
type Record struct {
	ID    string
	PetID string

	VisitDate time.Time
	Diagnosis string
	Treatment string

	CreatedAt time.Time
	UpdatedAt time.Time
}
