package routing

// HybridMap builds the thread_map indirection table for a heterogeneous
// CPU: pCoresNum performance cores, each claiming pCoresSize routing
// slots, followed by eCoresNum efficiency cores, each claiming
// eCoresSize slots. Slot i routes to worker thread HybridMap(...)[i].
func HybridMap(pCoresNum, pCoresSize, eCoresNum, eCoresSize int) []int {
	total := pCoresNum*pCoresSize + eCoresNum*eCoresSize
	m := make([]int, 0, total)

	for t := 0; t < pCoresNum; t++ {
		for s := 0; s < pCoresSize; s++ {
			m = append(m, t)
		}
	}
	for t := 0; t < eCoresNum; t++ {
		for s := 0; s < eCoresSize; s++ {
			m = append(m, pCoresNum+t)
		}
	}
	return m
}
