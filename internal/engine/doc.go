// Package engine runs the hash-partitioned parallel A* search: one worker
// goroutine per partition, each guarding its own open (pqueue.Queue) and
// closed (map) sets under per-concern mutexes, coordinating through a
// shared best-final node and an atomic termination flag. RunSerial is the
// single-worker specialization with no routing or cross-worker locking.
package engine
