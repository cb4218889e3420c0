package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	// UserNames mapeia userId -> nome de exibição; identidade quando ausente.
	UserNames map[string]string `json:"user_names" yaml:"user_names" toml:"user_names"`
	// ExcludedUsers são identificadores removidos do dataset na carga.
	ExcludedUsers []string `json:"excluded_users" yaml:"excluded_users" toml:"excluded_users"`
	DefaultPreset string   `json:"default_preset" yaml:"default_preset" toml:"default_preset"`
	PersianDigits bool     `json:"persian_digits" yaml:"persian_digits" toml:"persian_digits"`
	ReportName    string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType    []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
}
