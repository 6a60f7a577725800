package models

// Accelerometer holds one linear acceleration reading (m/s²)
type Accelerometer struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Gyroscope holds one rotation rate reading in the device-native
// alpha/beta/gamma convention (deg/s)
type Gyroscope struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
	Gamma float64 `json:"gamma"`
}

// Rotation holds a rotation rate reading in the classifier-facing
// x/y/z convention
type Rotation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// GPS holds one location fix. Speed, altitude and accuracy are optional
// on most devices
type GPS struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Speed    *float64 `json:"speed,omitempty"`
	Altitude *float64 `json:"altitude,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty"`
}

// SensorSample is one instant's reading as submitted by a device.
// The three sub-objects are pointers so that a missing reading is
// distinguishable from a zero one
type SensorSample struct {
	Accelerometer *Accelerometer `json:"accelerometer"`
	Gyroscope     *Gyroscope     `json:"gyroscope"`
	GPS           *GPS           `json:"gps"`
	Timestamp     int64          `json:"timestamp,omitempty"` // Unix milliseconds
}

// CanonicalGPS is the classifier-facing GPS shape. Speed and altitude
// are always present (defaulted to 0 when the device omitted them);
// lat/lon are passed through as-is, never defaulted
type CanonicalGPS struct {
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Speed    float64  `json:"speed"`
	Altitude float64  `json:"altitude"`
}

// CanonicalSample is one sample in the shape the classifier expects
type CanonicalSample struct {
	Accelerometer Accelerometer `json:"accelerometer"`
	Gyroscope     Rotation      `json:"gyroscope"`
	GPS           CanonicalGPS  `json:"gps"`
	Timestamp     int64         `json:"timestamp,omitempty"`
}

// PredictRequest is the window submission payload
type PredictRequest struct {
	SensorDataArray []SensorSample `json:"sensorDataArray"`
	TripID          string         `json:"tripId"`
	UserID          string         `json:"userId,omitempty"`
}
