package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Token represents the OAuth2 token payload returned by the auth endpoints
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// RegisterRequest is the payload for POST /auth/register
type RegisterRequest struct {
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	Password    string  `json:"password"`
	Email       *string `json:"email,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Language    string  `json:"language,omitempty"`
}

// MobilityLevel represents a user's mobility classification
type MobilityLevel string

const (
	MobilitySelfReliant MobilityLevel = "self_reliant"
	MobilityAssisted    MobilityLevel = "assisted"
	MobilityWheelchair  MobilityLevel = "wheelchair"
)

// User represents a user profile as returned by /users/me
type User struct {
	ID                string    `json:"id"`
	FullName          string    `json:"full_name"`
	Phone             string    `json:"phone"`
	Email             *string   `json:"email"`
	DateOfBirth       *string   `json:"date_of_birth"`
	Gender            *string   `json:"gender"`
	Language          string    `json:"language"`
	MobilityLevel     string    `json:"mobility_level"`
	BiometricEnrolled bool      `json:"biometric_enrolled"`
	FontSize          int       `json:"font_size"`
	HighContrast      bool      `json:"high_contrast"`
	VoiceEnabled      bool      `json:"voice_enabled"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// UserPreferences holds accessibility preferences sent with profile updates
type UserPreferences struct {
	FontSize     int    `json:"font_size"`
	HighContrast bool   `json:"high_contrast"`
	VoiceEnabled bool   `json:"voice_enabled"`
	Language     string `json:"language,omitempty"`
}

// UserUpdate is the partial profile payload for PATCH /users/me
type UserUpdate struct {
	FullName       *string          `json:"full_name,omitempty"`
	Email          *string          `json:"email,omitempty"`
	DateOfBirth    *string          `json:"date_of_birth,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	MobilityLevel  *MobilityLevel   `json:"mobility_level,omitempty"`
	MedicalHistory *string          `json:"medical_history,omitempty"`
	Allergies      *string          `json:"allergies,omitempty"`
	Preferences    *UserPreferences `json:"preferences,omitempty"`
}

// MetricValue is a nullable vital measurement. The backend serializes
// decimal columns as JSON strings while ingest payloads use numbers, so
// both encodings must decode into the same value.
type MetricValue float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
func (m *MetricValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid metric value %q: %w", s, err)
	}
	*m = MetricValue(f)
	return nil
}

// MarshalJSON encodes the value as a plain JSON number.
func (m MetricValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

// VitalReading represents one vitals snapshot as returned by /vitals.
// Every metric is independently nullable; a nil field means the metric
// was not recorded, not that it was zero.
type VitalReading struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	RecordedAt   time.Time    `json:"recorded_at"`
	Source       string       `json:"source"`
	HeartRate    *MetricValue `json:"heart_rate"`
	SystolicBP   *MetricValue `json:"systolic_bp"`
	DiastolicBP  *MetricValue `json:"diastolic_bp"`
	GlucoseLevel *MetricValue `json:"glucose_level"`
	SpO2         *MetricValue `json:"spo2"`
	WeightKg     *MetricValue `json:"weight_kg"`
	Steps        *MetricValue `json:"steps"`
	SleepHours   *MetricValue `json:"sleep_hours"`
	TemperatureC *MetricValue `json:"temperature_c"`
}

// VitalCreate is the ingest payload for POST /vitals. Only the metrics
// actually measured should be set; absent fields are omitted from the body.
type VitalCreate struct {
	HeartRate    *float64 `json:"heart_rate,omitempty"`
	SystolicBP   *float64 `json:"systolic_bp,omitempty"`
	DiastolicBP  *float64 `json:"diastolic_bp,omitempty"`
	GlucoseLevel *float64 `json:"glucose_level,omitempty"`
	SpO2         *float64 `json:"spo2,omitempty"`
	WeightKg     *float64 `json:"weight_kg,omitempty"`
	Steps        *int     `json:"steps,omitempty"`
	SleepHours   *float64 `json:"sleep_hours,omitempty"`
	TemperatureC *float64 `json:"temperature_c,omitempty"`
	Source       string   `json:"source,omitempty"`
}

// Medication represents a medication schedule entry
type Medication struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency"`
	Times     []string  `json:"times"`
	WithFood  bool      `json:"with_food"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MedicationCreate is the payload for POST /medications
type MedicationCreate struct {
	Name              string   `json:"name"`
	Dosage            string   `json:"dosage"`
	Frequency         string   `json:"frequency"`
	Times             []string `json:"times,omitempty"`
	WithFood          bool     `json:"with_food"`
	PrescribingDoctor *string  `json:"prescribing_doctor,omitempty"`
	StartDate         *string  `json:"start_date,omitempty"`
	EndDate           *string  `json:"end_date,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// RiskType identifies a risk-prediction model family
type RiskType string

const (
	RiskTypeFall     RiskType = "fall"
	RiskTypeCardiac  RiskType = "cardiac"
	RiskTypeDiabetic RiskType = "diabetic"
)

// RiskLevel is the discrete tier derived from a risk score
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
)

// RiskScore represents one risk prediction as returned by /risk endpoints
type RiskScore struct {
	ID                   string         `json:"id"`
	UserID               string         `json:"user_id"`
	RiskType             string         `json:"risk_type"`
	Score                float64        `json:"score"`
	RiskLevel            string         `json:"risk_level"`
	ModelUsed            string         `json:"model_used"`
	ModelVersion         string         `json:"model_version"`
	PredictionWindowDays int            `json:"prediction_window_days"`
	FeatureSnapshot      map[string]any `json:"feature_snapshot"`
	ComputedAt           time.Time      `json:"computed_at"`
}

// MealType identifies which meal of the day a plan entry covers
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// MealItem is a single food item inside a meal plan entry
type MealItem struct {
	Name     string   `json:"name"`
	Quantity string   `json:"quantity"`
	Calories float64  `json:"calories"`
	ProteinG *float64 `json:"protein_g,omitempty"`
	CarbsG   *float64 `json:"carbs_g,omitempty"`
	FatG     *float64 `json:"fat_g,omitempty"`
}

// MealPlan represents one meal-type entry of a daily diet plan.
// The backend returns one entry per meal_type per date.
type MealPlan struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Date          string     `json:"date"`
	MealType      string     `json:"meal_type"`
	Items         []MealItem `json:"items"`
	TotalCalories *float64   `json:"total_calories"`
	TotalProteinG *float64   `json:"total_protein_g"`
	TotalCarbsG   *float64   `json:"total_carbs_g"`
	TotalFatG     *float64   `json:"total_fat_g"`
	SodiumMg      *float64   `json:"sodium_mg"`
	GeneratedBy   string     `json:"generated_by"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DietGenerateRequest is the payload for POST /diet/generate
type DietGenerateRequest struct {
	Date               string   `json:"date"`
	Conditions         []string `json:"conditions,omitempty"`
	CalorieTarget      *int     `json:"calorie_target,omitempty"`
	DietaryPreferences []string `json:"dietary_preferences,omitempty"`
}

// WorkoutExercise is a single exercise inside a generated workout plan
type WorkoutExercise struct {
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Reps            *int    `json:"reps,omitempty"`
	Sets            *int    `json:"sets,omitempty"`
	Instructions    string  `json:"instructions"`
	Modifications   *string `json:"modifications,omitempty"`
}

// WorkoutPlan represents a generated workout plan
type WorkoutPlan struct {
	Date                 string            `json:"date"`
	FitnessLevel         string            `json:"fitness_level"`
	TotalDurationMinutes int               `json:"total_duration_minutes"`
	Exercises            []WorkoutExercise `json:"exercises"`
	FITTVPNotes          string            `json:"fitt_vp_notes"`
	GeneratedBy          string            `json:"generated_by"`
}

// WorkoutGenerateRequest is the payload for POST /workouts/generate
type WorkoutGenerateRequest struct {
	Conditions         []string `json:"conditions,omitempty"`
	FitnessLevel       string   `json:"fitness_level,omitempty"`
	AvailableEquipment []string `json:"available_equipment,omitempty"`
	DurationMinutes    int      `json:"duration_minutes,omitempty"`
}

// MessageRole represents the role of a chat message sender
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// ChatMessage represents one message in an assistant chat session.
// Messages are ordered by Timestamp within a session.
type ChatMessage struct {
	SessionID string    `json:"session_id"`
	MessageID string    `json:"message_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatHistory represents the full transcript of a chat session
type ChatHistory struct {
	SessionID string        `json:"session_id"`
	Messages  []ChatMessage `json:"messages"`
}

// TriggerMethod identifies how an SOS event was initiated
type TriggerMethod string

const (
	TriggerMethodButton        TriggerMethod = "button"
	TriggerMethodVoice         TriggerMethod = "voice"
	TriggerMethodFallDetection TriggerMethod = "fall_detection"
	TriggerMethodAuto          TriggerMethod = "auto"
)

// SOSStatus represents the lifecycle state of an SOS event
type SOSStatus string

const (
	SOSStatusPending    SOSStatus = "pending"
	SOSStatusDispatched SOSStatus = "dispatched"
	SOSStatusResolved   SOSStatus = "resolved"
	SOSStatusCancelled  SOSStatus = "cancelled"
)

// SOSEvent represents an emergency SOS event.
// ResolvedAt is set only once the event leaves its triggered state.
type SOSEvent struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	TriggerMethod  string     `json:"trigger_method"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	Status         string     `json:"status"`
	PoliceNotified bool       `json:"police_notified"`
	FamilyNotified bool       `json:"family_notified"`
	DispatchRef    *string    `json:"dispatch_ref"`
	TriggeredAt    time.Time  `json:"triggered_at"`
	ResolvedAt     *time.Time `json:"resolved_at"`
}

// EmergencyContact represents a contact notified on SOS.
// At most one contact per user should be primary; the backend enforces it.
type EmergencyContact struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
	IsPrimary   bool   `json:"is_primary"`
	NotifyOnSOS bool   `json:"notify_on_sos"`
}

// EmergencyContactCreate is the payload for POST /emergency/contacts
type EmergencyContactCreate struct {
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	Phone       string `json:"phone"`
	IsPrimary   bool   `json:"is_primary"`
	NotifyOnSOS bool   `json:"notify_on_sos"`
}

// WearableProvider describes a supported wearable data provider
type WearableProvider struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url,omitempty"`
	AuthType    string `json:"auth_type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Wearable represents a connected wearable integration
type Wearable struct {
	ID          string     `json:"id"`
	Provider    string     `json:"provider"`
	ConnectedAt time.Time  `json:"connected_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// WearableConnectRequest is the payload for POST /wearables/connect
type WearableConnectRequest struct {
	Provider     string     `json:"provider"`
	AccessToken  string     `json:"access_token"`
	RefreshToken *string    `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// TravelMatch represents a travel-companion match suggestion
type TravelMatch struct {
	UserID                string   `json:"user_id"`
	FullName              string   `json:"full_name"`
	MobilityLevel         string   `json:"mobility_level"`
	PreferredDestinations []string `json:"preferred_destinations"`
	PreferredTravelMonths []int    `json:"preferred_travel_months"`
	BudgetPerDay          *float64 `json:"budget_per_day"`
	CompanionsNeeded      int      `json:"companions_needed"`
	MatchScore            float64  `json:"match_score"`
}

// TravelProfileCreate is the payload for POST /travel/profile
type TravelProfileCreate struct {
	MobilityLevel         MobilityLevel `json:"mobility_level"`
	PreferredDestinations []string      `json:"preferred_destinations,omitempty"`
	PreferredTravelMonths []int         `json:"preferred_travel_months,omitempty"`
	BudgetPerDay          *float64      `json:"budget_per_day,omitempty"`
	CompanionsNeeded      int           `json:"companions_needed,omitempty"`
	MedicalRequirements   *string       `json:"medical_requirements,omitempty"`
	IsDiscoverable        bool          `json:"is_discoverable"`
}

// TravelProfileResult is the response of POST /travel/profile
type TravelProfileResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// AadhaarVerifyResult is the response of POST /auth/aadhaar-verify
type AadhaarVerifyResult struct {
	Verified          bool    `json:"verified"`
	Confidence        float64 `json:"confidence"`
	BiometricEnrolled bool    `json:"biometric_enrolled"`
}
