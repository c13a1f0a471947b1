/*
Package status implements the cosmetic session status indicator.

	Idle --Launch--> Launching --Attach--> Attached --Dismiss--> Attached (banner hidden)

No connection is made; the phases only drive the "Outlet Unattached"
label, the launch button color and the launch banner. The package holds no
timers itself: callers schedule Attach and Dismiss after their delays and
pass back the Ticket returned by Launch, which makes stale callbacks inert.
*/
package status
