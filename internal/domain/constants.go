package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinPasswordLength    = 4
	MinTimerMinutes      = 1
	MaxTimerMinutes      = 10080 // 1 week
	MaxInstructions      = 20
	MaxTeamMembers       = 10
	MaxProjectNameLength = 200
)

// SettingsRowID фиксированный ID единственной строки admin_settings
// Статус системы хранится в singleton-строке; приложение всегда адресует её по этому ID
const SettingsRowID = "3edba1fd-7199-472b-9dd8-710f271ddd95"
