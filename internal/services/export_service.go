package services

import (
	"strconv"
	"time"

	"github.com/flowsync/flowsync/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Sleep Score",
	"Sleep Hours",
	"HRV",
	"Resting HR",
	"Energy Level",
	"Energy Score",
	"Mood",
	"Mood Score",
	"Note",
}

type ExportBiometricReader interface {
	FetchRange(from *time.Time, to *time.Time) ([]models.BiometricRecord, error)
}

type ExportMoodReader interface {
	FetchAllMoods() ([]models.MoodEntry, error)
}

type ExportService struct {
	biometrics ExportBiometricReader
	moods      ExportMoodReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

type ExportEntry struct {
	Date        string   `json:"date"`
	SleepScore  *float64 `json:"sleep_score,omitempty"`
	SleepHours  *float64 `json:"sleep_hours,omitempty"`
	HRV         *float64 `json:"hrv,omitempty"`
	RestingHR   *float64 `json:"resting_hr,omitempty"`
	EnergyLevel string   `json:"energy_level,omitempty"`
	EnergyScore *float64 `json:"energy_score,omitempty"`
	Mood        string   `json:"mood,omitempty"`
	MoodScore   *int     `json:"mood_score,omitempty"`
	Note        string   `json:"note,omitempty"`
}

func NewExportService(biometrics ExportBiometricReader, moods ExportMoodReader) *ExportService {
	return &ExportService{
		biometrics: biometrics,
		moods:      moods,
	}
}

// BuildEntries merges biometric records and mood entries into one row per
// day, ascending by date. Days can carry either kind alone.
func (service *ExportService) BuildEntries(from *time.Time, to *time.Time, location *time.Location) ([]ExportEntry, error) {
	records, err := service.biometrics.FetchRange(from, to)
	if err != nil {
		return nil, err
	}
	moods, err := service.moods.FetchAllMoods()
	if err != nil {
		return nil, err
	}

	entriesByDay := make(map[string]*ExportEntry)
	dayKeys := make([]string, 0, len(records))

	for _, record := range records {
		key := DayKey(DateAtLocation(record.Date, location))
		entry := &ExportEntry{
			Date:        key,
			SleepScore:  floatPointer(record.SleepScore),
			SleepHours:  floatPointer(record.SleepHours),
			HRV:         floatPointer(record.HRV),
			RestingHR:   floatPointer(record.RestingHR),
			EnergyLevel: record.EnergyLevel,
			EnergyScore: floatPointer(record.EnergyScore),
		}
		entriesByDay[key] = entry
		dayKeys = append(dayKeys, key)
	}

	for _, mood := range moods {
		day := DateAtLocation(mood.Timestamp, location)
		if from != nil && day.Before(*from) {
			continue
		}
		if to != nil && !day.Before(*to) {
			continue
		}

		key := DayKey(day)
		entry, ok := entriesByDay[key]
		if !ok {
			entry = &ExportEntry{Date: key}
			entriesByDay[key] = entry
			dayKeys = insertDayKeySorted(dayKeys, key)
		}
		entry.Mood = mood.MoodLabel
		entry.MoodScore = intPointer(mood.MoodScore)
		entry.Note = mood.Note
	}

	entries := make([]ExportEntry, 0, len(dayKeys))
	for _, key := range dayKeys {
		entries = append(entries, *entriesByDay[key])
	}
	return entries, nil
}

func (service *ExportService) BuildSummary(from *time.Time, to *time.Time, location *time.Location) (ExportSummary, error) {
	entries, err := service.BuildEntries(from, to, location)
	if err != nil {
		return ExportSummary{}, err
	}
	if len(entries) == 0 {
		return ExportSummary{}, nil
	}

	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     entries[0].Date,
		DateTo:       entries[len(entries)-1].Date,
	}, nil
}

func (entry ExportEntry) Columns() []string {
	return []string{
		entry.Date,
		csvFloat(entry.SleepScore),
		csvFloat(entry.SleepHours),
		csvFloat(entry.HRV),
		csvFloat(entry.RestingHR),
		entry.EnergyLevel,
		csvFloat(entry.EnergyScore),
		entry.Mood,
		csvInt(entry.MoodScore),
		entry.Note,
	}
}

// insertDayKeySorted keeps dayKeys ascending; mood-only days can land
// between existing biometric days.
func insertDayKeySorted(dayKeys []string, key string) []string {
	position := len(dayKeys)
	for i, existing := range dayKeys {
		if key < existing {
			position = i
			break
		}
	}
	dayKeys = append(dayKeys, "")
	copy(dayKeys[position+1:], dayKeys[position:])
	dayKeys[position] = key
	return dayKeys
}

func floatPointer(value float64) *float64 {
	return &value
}

func intPointer(value int) *int {
	return &value
}

func csvFloat(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'f', -1, 64)
}

func csvInt(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}
