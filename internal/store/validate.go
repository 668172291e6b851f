package store

import (
	"yardkeeper/internal/apperr"
	"yardkeeper/internal/models"
)

// validateIntake rejects an incomplete intake before anything is written.
func validateIntake(in *IntakeInput) error {
	if in.RegistrationNumber == "" {
		return apperr.Invalid("registration_number", "required")
	}
	if in.VehicleType == "" {
		return apperr.Invalid("vehicle_type", "required")
	}
	if in.InPlace == "" {
		return apperr.Invalid("in_place", "required")
	}
	if in.InDate.IsZero() {
		return apperr.Invalid("in_date", "required")
	}
	if !models.KnownCondition(in.Battery.Condition) {
		return apperr.Invalid("battery.condition", "must be good, average or bad")
	}
	if err := validateDocuments(in.Documents); err != nil {
		return err
	}
	return validateTyres(in.Tyres)
}

// validateDocuments requires the checklist to cover the canonical tag
// vocabulary exactly: one entry per tag, no strays.
func validateDocuments(docs map[string]bool) error {
	if docs == nil {
		return apperr.Invalid("documents", "checklist is required")
	}
	for _, tag := range models.DocumentTags {
		if _, ok := docs[tag]; !ok {
			return apperr.Invalid("documents", "missing checklist entry "+tag)
		}
	}
	if len(docs) != len(models.DocumentTags) {
		for tag := range docs {
			if !knownDocumentTag(tag) {
				return apperr.Invalid("documents", "unknown checklist entry "+tag)
			}
		}
	}
	return nil
}

// validateTyres requires exactly one tyre per canonical position.
func validateTyres(tyres []TyreInput) error {
	if len(tyres) != len(models.TyrePositions) {
		return apperr.Invalid("tyres", "exactly five tyres are required")
	}
	seen := map[string]bool{}
	for _, t := range tyres {
		if !knownTyrePosition(t.Position) {
			return apperr.Invalid("tyres", "unknown position "+t.Position)
		}
		if seen[t.Position] {
			return apperr.Invalid("tyres", "duplicate position "+t.Position)
		}
		seen[t.Position] = true
		if !models.KnownCondition(t.Condition) {
			return apperr.Invalid("tyres", "condition must be good, average or bad")
		}
	}
	return nil
}

func knownDocumentTag(tag string) bool {
	for _, t := range models.DocumentTags {
		if t == tag {
			return true
		}
	}
	return false
}

func knownTyrePosition(pos string) bool {
	for _, p := range models.TyrePositions {
		if p == pos {
			return true
		}
	}
	return false
}
