package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Asia/Seoul")
	if err != nil {
		panic(err)
	}
}

// KBO seasons and game dates are KST. Pinning the location keeps
// collection-run timestamps stable no matter where the tool runs.
func Now() time.Time {
	return time.Now().In(Location)
}
