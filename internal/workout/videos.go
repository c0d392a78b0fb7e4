package workout

import "vitality/internal/models"

// Tiered video catalogs. Low and recovery intensities share the
// gentle catalog; each list is fixed and ordered.
var gentleVideos = []models.WorkoutVideo{
	{ID: 101, Title: "10-Minute Morning Stretch", Duration: "10 min", Channel: "MoveDaily", Tier: models.IntensityLow},
	{ID: 102, Title: "Gentle Yoga for Beginners", Duration: "15 min", Channel: "CalmFlow", Tier: models.IntensityLow},
	{ID: 103, Title: "Foam Rolling Recovery Routine", Duration: "12 min", Channel: "RecoverWell", Tier: models.IntensityRecovery},
	{ID: 104, Title: "Low-Impact Walking Workout", Duration: "20 min", Channel: "MoveDaily", Tier: models.IntensityLow},
	{ID: 105, Title: "Full-Body Mobility Flow", Duration: "18 min", Channel: "CalmFlow", Tier: models.IntensityLow},
	{ID: 106, Title: "Restorative Evening Yoga", Duration: "25 min", Channel: "CalmFlow", Tier: models.IntensityRecovery},
	{ID: 107, Title: "Chair Stretches for Sore Muscles", Duration: "10 min", Channel: "RecoverWell", Tier: models.IntensityRecovery},
	{ID: 108, Title: "Breathing and Light Core", Duration: "15 min", Channel: "MoveDaily", Tier: models.IntensityLow},
	{ID: 109, Title: "Soothing Hip Opener Sequence", Duration: "14 min", Channel: "CalmFlow", Tier: models.IntensityRecovery},
	{ID: 110, Title: "Easy Balance and Posture Reset", Duration: "12 min", Channel: "MoveDaily", Tier: models.IntensityLow},
}

var moderateVideos = []models.WorkoutVideo{
	{ID: 201, Title: "20-Minute Bodyweight Circuit", Duration: "20 min", Channel: "FitBlock", Tier: models.IntensityModerate},
	{ID: 202, Title: "Dance Cardio Party", Duration: "25 min", Channel: "GrooveFit", Tier: models.IntensityModerate},
	{ID: 203, Title: "Dumbbell Strength Basics", Duration: "22 min", Channel: "FitBlock", Tier: models.IntensityModerate},
	{ID: 204, Title: "Pilates Core Burner", Duration: "18 min", Channel: "CoreHouse", Tier: models.IntensityModerate},
	{ID: 205, Title: "Kickboxing Fundamentals", Duration: "20 min", Channel: "StrikeLab", Tier: models.IntensityModerate},
	{ID: 206, Title: "Steady-State Indoor Cycling", Duration: "30 min", Channel: "SpinRoom", Tier: models.IntensityModerate},
	{ID: 207, Title: "Functional Training Flow", Duration: "25 min", Channel: "FitBlock", Tier: models.IntensityModerate},
	{ID: 208, Title: "Step Aerobics Classic", Duration: "20 min", Channel: "GrooveFit", Tier: models.IntensityModerate},
	{ID: 209, Title: "Resistance Band Full Body", Duration: "22 min", Channel: "CoreHouse", Tier: models.IntensityModerate},
}

var highVideos = []models.WorkoutVideo{
	{ID: 301, Title: "HIIT Inferno", Duration: "20 min", Channel: "BurnUnit", Tier: models.IntensityHigh},
	{ID: 302, Title: "Tabata Total Body", Duration: "25 min", Channel: "BurnUnit", Tier: models.IntensityHigh},
	{ID: 303, Title: "Plyometric Power Session", Duration: "22 min", Channel: "JumpSquad", Tier: models.IntensityHigh},
	{ID: 304, Title: "Sprint Interval Challenge", Duration: "18 min", Channel: "TrackFit", Tier: models.IntensityHigh},
	{ID: 305, Title: "Heavy Bag Blast", Duration: "25 min", Channel: "StrikeLab", Tier: models.IntensityHigh},
	{ID: 306, Title: "Advanced Strength Complex", Duration: "30 min", Channel: "BurnUnit", Tier: models.IntensityHigh},
	{ID: 307, Title: "Hill Climb Cycling Intervals", Duration: "28 min", Channel: "SpinRoom", Tier: models.IntensityHigh},
	{ID: 308, Title: "Battle Rope Conditioning", Duration: "15 min", Channel: "JumpSquad", Tier: models.IntensityHigh},
	{ID: 309, Title: "Explosive Athlete Circuit", Duration: "24 min", Channel: "TrackFit", Tier: models.IntensityHigh},
}

// UseVideoCatalog replaces a tier's compiled-in catalog, typically
// with rows loaded from the database at startup. Empty slices are
// ignored so a missing table keeps the built-in lists.
func UseVideoCatalog(tier models.Intensity, videos []models.WorkoutVideo) {
	if len(videos) == 0 {
		return
	}
	switch tier {
	case models.IntensityHigh:
		highVideos = videos
	case models.IntensityModerate:
		moderateVideos = videos
	default:
		gentleVideos = videos
	}
}

// VideosFor returns the fixed catalog slice for an intensity tier.
func VideosFor(intensity models.Intensity) []models.WorkoutVideo {
	switch intensity {
	case models.IntensityHigh:
		return highVideos
	case models.IntensityModerate:
		return moderateVideos
	default:
		// low and recovery share the gentle catalog
		return gentleVideos
	}
}
