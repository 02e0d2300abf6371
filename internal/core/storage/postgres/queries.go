package postgres

// SQL for the star schema. Dimension rows are addressed by surrogate key,
// fact rows reference them by foreign key.

const (
	queryTableExists = `
		SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)
	`

	// queryFindOrCreateTimeBucket is a single atomic find-or-create on the
	// unique six-field tuple. The no-op DO UPDATE makes RETURNING yield the
	// existing row on conflict (DO NOTHING would return no rows).
	queryFindOrCreateTimeBucket = `
		INSERT INTO dim_time (date_value, year, month, day, hour, weekday)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (date_value, year, month, day, hour, weekday)
		DO UPDATE SET hour = EXCLUDED.hour
		RETURNING time_id
	`
)

// Drivers
const (
	driverColumns = `driver_id, name, license_type, email, phone, date_of_birth`

	queryListDrivers = `
		SELECT ` + driverColumns + `
		FROM dim_driver
		ORDER BY driver_id
		LIMIT $1
	`

	queryGetDriver = `
		SELECT ` + driverColumns + `
		FROM dim_driver
		WHERE driver_id = $1
	`

	queryCreateDriver = `
		INSERT INTO dim_driver (name, license_type, email, phone, date_of_birth)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + driverColumns

	// queryUpdateDriver applies a partial update: NULL parameters keep the
	// stored value.
	queryUpdateDriver = `
		UPDATE dim_driver SET
			name          = COALESCE($2, name),
			license_type  = COALESCE($3, license_type),
			email         = COALESCE($4, email),
			phone         = COALESCE($5, phone),
			date_of_birth = COALESCE($6, date_of_birth)
		WHERE driver_id = $1
		RETURNING ` + driverColumns

	queryDeleteDriver = `DELETE FROM dim_driver WHERE driver_id = $1`
)

// Vehicles
const (
	vehicleColumns = `vehicle_id, make, model, year, type`

	queryListVehicles = `
		SELECT ` + vehicleColumns + `
		FROM dim_vehicle
		ORDER BY vehicle_id
		LIMIT $1
	`

	queryGetVehicle = `
		SELECT ` + vehicleColumns + `
		FROM dim_vehicle
		WHERE vehicle_id = $1
	`

	queryCreateVehicle = `
		INSERT INTO dim_vehicle (make, model, year, type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + vehicleColumns

	queryUpdateVehicle = `
		UPDATE dim_vehicle SET
			make  = COALESCE($2, make),
			model = COALESCE($3, model),
			year  = COALESCE($4, year),
			type  = COALESCE($5, type)
		WHERE vehicle_id = $1
		RETURNING ` + vehicleColumns

	queryDeleteVehicle = `DELETE FROM dim_vehicle WHERE vehicle_id = $1`
)

// Trips
const (
	tripColumns = `trip_id, driver_id, vehicle_id, time_id, distance_km, avg_speed,
		harsh_events, eco_score, safety_score, trip_duration_sec, max_speed`

	queryListTrips = `
		SELECT ` + tripColumns + `
		FROM fact_trip
		ORDER BY trip_id DESC
		LIMIT $1
	`

	queryListTripsByDriver = `
		SELECT ` + tripColumns + `
		FROM fact_trip
		WHERE driver_id = $1
		ORDER BY trip_id DESC
		LIMIT $2
	`

	queryGetTrip = `
		SELECT ` + tripColumns + `
		FROM fact_trip
		WHERE trip_id = $1
	`

	queryCreateTrip = `
		INSERT INTO fact_trip (
			driver_id, vehicle_id, time_id, distance_km, avg_speed,
			harsh_events, eco_score, safety_score, trip_duration_sec, max_speed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + tripColumns

	queryDeleteTrip = `DELETE FROM fact_trip WHERE trip_id = $1`

	// Averages come back as text so they can be parsed into decimals
	// without a float round trip.
	queryTripSummaryByDriver = `
		SELECT
			COUNT(trip_id),
			COALESCE(AVG(safety_score), 0)::text,
			COALESCE(AVG(eco_score), 0)::text
		FROM fact_trip
		WHERE driver_id = $1
	`
)

// SOS
const (
	sosColumns = `sos_id, driver_id, vehicle_id, time_id, location_id,
		severity, signature_valid, anomaly_score, resolved`

	queryCreateLocation = `
		INSERT INTO dim_location (latitude, longitude, city, road_type)
		VALUES ($1, $2, $3, $4)
		RETURNING location_id
	`

	queryCreateSOS = `
		INSERT INTO fact_sos (
			driver_id, vehicle_id, time_id, location_id,
			severity, signature_valid, anomaly_score, resolved
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING ` + sosColumns

	queryGetSOS = `
		SELECT ` + sosColumns + `
		FROM fact_sos
		WHERE sos_id = $1
	`

	queryListUnresolvedSOS = `
		SELECT ` + sosColumns + `
		FROM fact_sos
		WHERE resolved IS NOT TRUE
		ORDER BY sos_id DESC
		LIMIT $1
	`

	queryResolveSOS = `
		UPDATE fact_sos SET resolved = TRUE
		WHERE sos_id = $1
		RETURNING ` + sosColumns
)

// Gamification
const (
	queryListBadges = `
		SELECT badge_id, badge_name, description, category
		FROM dim_badge
		ORDER BY badge_id
		LIMIT $1
	`

	queryCreateGamificationEvent = `
		INSERT INTO fact_gamification (driver_id, time_id, badge_id, score_change, streak_days)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING gamelog_id, driver_id, time_id, badge_id, score_change, streak_days
	`

	// queryLeaderboardSince sums score changes over buckets on or after the
	// cutoff date. Drivers without a dimension row get a placeholder name.
	queryLeaderboardSince = `
		SELECT
			g.driver_id,
			COALESCE(d.name, 'Driver ' || g.driver_id::text),
			COALESCE(SUM(g.score_change), 0)
		FROM fact_gamification g
		JOIN dim_time t ON t.time_id = g.time_id
		LEFT JOIN dim_driver d ON d.driver_id = g.driver_id
		WHERE t.date_value >= $1
		GROUP BY g.driver_id, d.name
		ORDER BY 3 DESC, g.driver_id
		LIMIT $2
	`

	queryLeaderboardAllTime = `
		SELECT
			g.driver_id,
			COALESCE(d.name, 'Driver ' || g.driver_id::text),
			COALESCE(SUM(g.score_change), 0)
		FROM fact_gamification g
		LEFT JOIN dim_driver d ON d.driver_id = g.driver_id
		GROUP BY g.driver_id, d.name
		ORDER BY 3 DESC, g.driver_id
		LIMIT $1
	`
)

// Analytics
const (
	queryTripsAnalytics = `
		SELECT
			COUNT(trip_id),
			COALESCE(AVG(distance_km), 0)::text,
			COALESCE(AVG(avg_speed), 0)::text,
			COALESCE(AVG(eco_score), 0)::text,
			COALESCE(AVG(safety_score), 0)::text
		FROM fact_trip
	`

	querySOSAnalytics = `
		SELECT
			COUNT(sos_id),
			COUNT(*) FILTER (WHERE resolved IS TRUE),
			COUNT(*) FILTER (WHERE resolved IS NOT TRUE)
		FROM fact_sos
	`
)

// Emergency
const (
	queryListEmergencyNumbers = `
		SELECT country_code, country_name, ambulance_number, notes
		FROM dim_emergency_number
		ORDER BY country_code
	`

	queryGetEmergencyNumber = `
		SELECT country_code, country_name, ambulance_number, notes
		FROM dim_emergency_number
		WHERE country_code = $1
	`

	emergencyColumns = `emergency_id, driver_id, auto_contact_enabled,
		emergency_country_code, share_location, share_medical_info`

	queryGetEmergencyProfile = `
		SELECT ` + emergencyColumns + `
		FROM dim_emergency
		WHERE driver_id = $1
	`

	// queryPutEmergencyProfile replaces the whole profile.
	queryPutEmergencyProfile = `
		INSERT INTO dim_emergency (
			driver_id, auto_contact_enabled, emergency_country_code,
			share_location, share_medical_info
		)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (driver_id) DO UPDATE SET
			auto_contact_enabled   = EXCLUDED.auto_contact_enabled,
			emergency_country_code = EXCLUDED.emergency_country_code,
			share_location         = EXCLUDED.share_location,
			share_medical_info     = EXCLUDED.share_medical_info
		RETURNING ` + emergencyColumns
)

// Profile. Upserts are partial: a NULL parameter keeps the stored value.
const (
	contactColumns = `contact_id, driver_id, name, relationship, phone, email, is_primary`

	queryListContacts = `
		SELECT ` + contactColumns + `
		FROM dim_contact
		WHERE driver_id = $1
		ORDER BY is_primary DESC, contact_id
	`

	queryCreateContact = `
		INSERT INTO dim_contact (driver_id, name, relationship, phone, email, is_primary)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + contactColumns

	medicalColumns = `medical_id, driver_id, blood_type, insurance, allergies,
		medications, conditions, instructions`

	queryGetMedical = `
		SELECT ` + medicalColumns + `
		FROM dim_medical
		WHERE driver_id = $1
	`

	queryUpsertMedical = `
		INSERT INTO dim_medical (
			driver_id, blood_type, insurance, allergies,
			medications, conditions, instructions
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (driver_id) DO UPDATE SET
			blood_type   = COALESCE(EXCLUDED.blood_type, dim_medical.blood_type),
			insurance    = COALESCE(EXCLUDED.insurance, dim_medical.insurance),
			allergies    = COALESCE(EXCLUDED.allergies, dim_medical.allergies),
			medications  = COALESCE(EXCLUDED.medications, dim_medical.medications),
			conditions   = COALESCE(EXCLUDED.conditions, dim_medical.conditions),
			instructions = COALESCE(EXCLUDED.instructions, dim_medical.instructions)
		RETURNING ` + medicalColumns

	settingsColumns = `settings_id, driver_id, detection_sensitivity, auto_sos_delay,
		accelerometer_enabled, gyroscope_enabled, gps_enabled, microphone_enabled`

	queryGetSettings = `
		SELECT ` + settingsColumns + `
		FROM dim_settings
		WHERE driver_id = $1
	`

	queryUpsertSettings = `
		INSERT INTO dim_settings (
			driver_id, detection_sensitivity, auto_sos_delay,
			accelerometer_enabled, gyroscope_enabled, gps_enabled, microphone_enabled
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (driver_id) DO UPDATE SET
			detection_sensitivity = COALESCE(EXCLUDED.detection_sensitivity, dim_settings.detection_sensitivity),
			auto_sos_delay        = COALESCE(EXCLUDED.auto_sos_delay, dim_settings.auto_sos_delay),
			accelerometer_enabled = COALESCE(EXCLUDED.accelerometer_enabled, dim_settings.accelerometer_enabled),
			gyroscope_enabled     = COALESCE(EXCLUDED.gyroscope_enabled, dim_settings.gyroscope_enabled),
			gps_enabled           = COALESCE(EXCLUDED.gps_enabled, dim_settings.gps_enabled),
			microphone_enabled    = COALESCE(EXCLUDED.microphone_enabled, dim_settings.microphone_enabled)
		RETURNING ` + settingsColumns

	privacyColumns = `privacy_id, driver_id, data_sharing_mode, location_accuracy, local_caching`

	queryGetPrivacy = `
		SELECT ` + privacyColumns + `
		FROM dim_privacy
		WHERE driver_id = $1
	`

	queryUpsertPrivacy = `
		INSERT INTO dim_privacy (driver_id, data_sharing_mode, location_accuracy, local_caching)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (driver_id) DO UPDATE SET
			data_sharing_mode = COALESCE(EXCLUDED.data_sharing_mode, dim_privacy.data_sharing_mode),
			location_accuracy = COALESCE(EXCLUDED.location_accuracy, dim_privacy.location_accuracy),
			local_caching     = COALESCE(EXCLUDED.local_caching, dim_privacy.local_caching)
		RETURNING ` + privacyColumns

	notificationColumns = `notification_id, driver_id, push_enabled, sound_enabled,
		vibration_enabled, volume`

	queryGetNotifications = `
		SELECT ` + notificationColumns + `
		FROM dim_notification
		WHERE driver_id = $1
	`

	queryUpsertNotifications = `
		INSERT INTO dim_notification (driver_id, push_enabled, sound_enabled, vibration_enabled, volume)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (driver_id) DO UPDATE SET
			push_enabled      = COALESCE(EXCLUDED.push_enabled, dim_notification.push_enabled),
			sound_enabled     = COALESCE(EXCLUDED.sound_enabled, dim_notification.sound_enabled),
			vibration_enabled = COALESCE(EXCLUDED.vibration_enabled, dim_notification.vibration_enabled),
			volume            = COALESCE(EXCLUDED.volume, dim_notification.volume)
		RETURNING ` + notificationColumns
)

// Templates
const (
	templateColumns = `id, title, status, to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS')`

	queryListTemplates = `
		SELECT ` + templateColumns + `
		FROM templateitem
		ORDER BY id
	`

	queryGetTemplate = `
		SELECT ` + templateColumns + `
		FROM templateitem
		WHERE id = $1
	`

	queryCreateTemplate = `
		INSERT INTO templateitem (title, body, status, created_at, updated_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING ` + templateColumns
)
