/*
Package mr is an in-process MapReduce execution engine.

It drives user-supplied map and reduce callbacks across a bounded pool
of worker goroutines, routing intermediate key/value pairs through a
fixed number of partitions so that each distinct key is reduced on
exactly one partition.

The engine does not own I/O of user data: mappers read their own input
(typically a file named by the Run caller) and reducers write their own
output. The word-count example in cmd/wordcount shows a complete
driver.

*/
package mr
