package models

// SettingsCategory is one category of clinic settings, stored as a single
// keyed document and edited as a unit from the admin dashboard.
type SettingsCategory struct {
	Category string            `json:"category" bson:"category"`
	Data     map[string]string `json:"data" bson:"data"`
}

// DefaultSettings returns the out-of-the-box website settings used until an
// admin saves their own.
func DefaultSettings() map[string]map[string]string {
	return map[string]map[string]string{
		"clinic-info": {
			"clinicName":        "DARSEHHA Clinic",
			"clinicPhone":       "(555) 123-4567",
			"clinicEmail":       "info@darsehha.com",
			"emergencyPhone":    "(555) 911-HELP",
			"clinicAddress":     "123 Health Street, Medical City",
			"clinicDescription": "Providing quality healthcare services with compassion and excellence.",
		},
		"website-content": {
			"heroTitle":             "Your Health, Our Priority",
			"heroSubtitle":          "Experience exceptional healthcare with our team of dedicated professionals. Book your appointment today and take the first step towards better health.",
			"totalPatients":         "15K+",
			"totalDoctors":          "50+",
			"yearsExperience":       "25",
			"emergencyAvailability": "24/7",
		},
		"appointment-settings": {
			"weekdayHours":      "8:00 AM - 8:00 PM",
			"saturdayHours":     "9:00 AM - 6:00 PM",
			"sundayHours":       "10:00 AM - 4:00 PM",
			"slotDuration":      "30",
			"maxAdvanceBooking": "30",
			"minAdvanceBooking": "2",
		},
		"system-settings": {
			"maintenanceMode":    "off",
			"autoApproval":       "off",
			"emailNotifications": "on",
			"dataRetention":      "365",
		},
	}
}
