// Package energy turns emission measurements into the breakdown shown
// next to a prediction: per-source energy shares and grouped field views.
package energy

// Record is a CodeCarbon style measurement of one run. Energies are in kWh,
// powers in W, emissions in kg CO2 and the emissions rate in kg/s.
type Record struct {
	Timestamp         string  `json:"timestamp"`
	ProjectName       string  `json:"project_name"`
	RunID             string  `json:"run_id"`
	ExperimentID      string  `json:"experiment_id"`
	Duration          float64 `json:"duration"`
	Emissions         float64 `json:"emissions"`
	EmissionsRate     float64 `json:"emissions_rate"`
	CPUPower          float64 `json:"cpu_power"`
	GPUPower          float64 `json:"gpu_power"`
	RAMPower          float64 `json:"ram_power"`
	CPUEnergy         float64 `json:"cpu_energy"`
	GPUEnergy         float64 `json:"gpu_energy"`
	RAMEnergy         float64 `json:"ram_energy"`
	EnergyConsumed    float64 `json:"energy_consumed"`
	CountryName       string  `json:"country_name"`
	CountryISOCode    string  `json:"country_iso_code"`
	Region            string  `json:"region"`
	CloudProvider     string  `json:"cloud_provider"`
	CloudRegion       string  `json:"cloud_region"`
	OS                string  `json:"os"`
	PythonVersion     string  `json:"python_version"`
	CodeCarbonVersion string  `json:"codecarbon_version"`
	CPUCount          int     `json:"cpu_count"`
	CPUModel          string  `json:"cpu_model"`
	GPUCount          int     `json:"gpu_count"`
	GPUModel          string  `json:"gpu_model"`
	Longitude         float64 `json:"longitude"`
	Latitude          float64 `json:"latitude"`
	RAMTotalSize      float64 `json:"ram_total_size"`
	TrackingMode      string  `json:"tracking_mode"`
	OnCloud           string  `json:"on_cloud"`
	PUE               float64 `json:"pue"`
}
