package camera

import "gocv.io/x/gocv"

// Probe tries device indices [0, max) and returns those that open and
// deliver a frame. Intended for the probe command; opening cameras just
// to test them is slow, so keep max small.
func Probe(max int) []int {
	var found []int
	for i := 0; i < max; i++ {
		cam, err := gocv.OpenVideoCapture(i)
		if err != nil {
			continue
		}
		mat := gocv.NewMat()
		if cam.Read(&mat) && !mat.Empty() {
			found = append(found, i)
		}
		mat.Close()
		cam.Close()
	}
	return found
}
