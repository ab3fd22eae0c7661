// Package affinity pins worker OS threads to explicit CPUs, so that hash
// partitions land on the cores the user (or a hybrid-CPU topology) named.
package affinity
