// Package reminder binds date conditions to actions.
//
// A Reminder pairs a condition.Condition with an action.Action and a
// number of days of advance warning. Reminders are usually loaded from
// YAML files:
//
//	reminders:
//	  - name: rent
//	    message: Pay the rent
//	    warn: 3
//	    when:
//	      day: 1
//	  - name: standup
//	    message: Prepare the sprint demo
//	    tags: [work]
//	    when:
//	      weekdays: [fri]
//	      only:
//	        iso_week: even
//
// A reminder with a done date is deferrable: its matches up to the done
// date are dropped, and in the remind mode the last undone match before the
// window start is reported again until it is marked done.
package reminder
