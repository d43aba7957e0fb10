package domain

type Doctor struct {
	ID           string
	Name         string
	Specialty    string
	Email        string
	Availability []string
}

// HasSlot reports whether slot is bookable. An unknown availability list
// accepts any slot.
func (d Doctor) HasSlot(slot string) bool {
	if len(d.Availability) == 0 {
		return true
	}

	for _, candidate := range d.Availability {
		if candidate == slot {
			return true
		}
	}

	return false
}

// StaticDoctors is the bundled directory used when the portal cannot list
// doctors, and the source of availability slots the API does not expose.
func StaticDoctors() []Doctor {
	return []Doctor{
		{
			ID:           "1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "General Practice",
			Availability: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
			Email:        "sarah.johnson@medicare.com",
		},
		{
			ID:           "2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Internal Medicine",
			Availability: []string{"08:00", "09:00", "10:00", "13:00", "14:00", "15:00"},
			Email:        "michael.chen@medicare.com",
		},
		{
			ID:           "3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Family Medicine",
			Availability: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"},
			Email:        "emily.rodriguez@medicare.com",
		},
		{
			ID:           "4",
			Name:         "Dr. David Wilson",
			Specialty:    "Cardiology",
			Availability: []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00"},
			Email:        "david.wilson@medicare.com",
		},
		{
			ID:           "5",
			Name:         "Dr. Lisa Thompson",
			Specialty:    "Pediatrics",
			Availability: []string{"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00"},
			Email:        "lisa.thompson@medicare.com",
		},
	}
}

// MergeAvailability copies availability slots from the static directory onto
// remote doctors with a matching id.
func MergeAvailability(remote []Doctor, static []Doctor) []Doctor {
	byID := make(map[string][]string, len(static))
	for _, doctor := range static {
		byID[doctor.ID] = doctor.Availability
	}

	merged := make([]Doctor, 0, len(remote))
	for _, doctor := range remote {
		if slots, ok := byID[doctor.ID]; ok && len(doctor.Availability) == 0 {
			doctor.Availability = append([]string(nil), slots...)
		}
		if doctor.Availability == nil {
			doctor.Availability = []string{}
		}
		merged = append(merged, doctor)
	}

	return merged
}

func FindDoctor(doctors []Doctor, id string) (Doctor, bool) {
	for _, doctor := range doctors {
		if doctor.ID == id {
			return doctor, true
		}
	}

	return Doctor{}, false
}
