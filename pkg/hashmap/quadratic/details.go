package quadratic

/*
	This hash map implementation uses a closed hashing (open addressing) technique with
	quadratic probing for resolving any hash collisions. Deleted entries are not shifted
	or compacted, they are marked with a tombstone instead. More information about these
	techniques can be found in the links provided below:
	01) https://en.wikipedia.org/wiki/Quadratic_probing
	02) https://en.wikipedia.org/wiki/Lazy_deletion
	03) https://www.cs.cmu.edu/~ckingsf/bioinfo-lectures/hashtables.pdf
	The basic principal is:
	-----------------------
	1) The number of buckets is always a prime number
	2) Calculate the hash value of the key, the i-th probe lands on (hash + i*i) % capacity
	3) Before inserting, grow the table (to the next prime past double) if the insert
	   would push the load factor above 0.5. A prime sized table that is at most half
	   full always has a free bucket within the first (capacity+1)/2 probes
	4) Inserting stops at the first empty or tombstoned bucket, or at a live bucket
	   holding the same key, which is updated in place
	5) Looking up and deleting walk the same sequence, never stopping at a tombstone,
	   and give up after capacity probes
	6) Deleting marks the bucket as a tombstone so probe sequences passing through it
	   for other keys stay intact. Tombstones are dropped whenever the table is rebuilt
*/
