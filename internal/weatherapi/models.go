package weatherapi

// Condition is the upstream free-text condition descriptor. Text is what
// presentation matching runs against; Code is carried but not interpreted.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// SnapshotLocation identifies the place a snapshot was resolved to.
// Name is the canonical location name and is the de-duplication key
// for saved locations.
type SnapshotLocation struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Localtime string `json:"localtime"` // locale-naive "2006-01-02 15:04"
}

// SnapshotCurrent holds the current-conditions block of a snapshot.
type SnapshotCurrent struct {
	TempC      float64   `json:"temp_c"`
	FeelsLikeC float64   `json:"feelslike_c"`
	Humidity   float64   `json:"humidity"`
	WindKph    float64   `json:"wind_kph"`
	UV         float64   `json:"uv"`
	IsDay      int       `json:"is_day"` // 1 = day, 0 = night
	Condition  Condition `json:"condition"`
}

// Snapshot is the current weather for one location at fetch time.
// Each fetch produces a wholly new value; callers replace snapshots,
// never patch them.
type Snapshot struct {
	Location SnapshotLocation `json:"location"`
	Current  SnapshotCurrent  `json:"current"`
}

// DayAggregate is one day's aggregate figures, shared by forecast and
// history days. History responses carry no chance-of-rain; the field
// simply stays zero there.
type DayAggregate struct {
	MaxTempC      float64   `json:"maxtemp_c"`
	MinTempC      float64   `json:"mintemp_c"`
	AvgTempC      float64   `json:"avgtemp_c"`
	Condition     Condition `json:"condition"`
	MaxWindKph    float64   `json:"maxwind_kph"`
	TotalPrecipMm float64   `json:"totalprecip_mm"`
	AvgHumidity   float64   `json:"avghumidity"`
	ChanceOfRain  int       `json:"daily_chance_of_rain"`
	UV            float64   `json:"uv"`
}

// ForecastDay is one future day's aggregate forecast.
type ForecastDay struct {
	Date      string       `json:"date"`
	DateEpoch int64        `json:"date_epoch"`
	Day       DayAggregate `json:"day"`
}

// HistoryDay is one past day's aggregate actuals.
type HistoryDay struct {
	Date string       `json:"date"`
	Day  DayAggregate `json:"day"`
}
