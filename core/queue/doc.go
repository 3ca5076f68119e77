// Package queue implements the station wait list: a FIFO of users with a
// single promote-to-front operation. There is no secondary ordering key;
// a promoted user is simply ahead of everyone else.
package queue
