/*
Package lesson holds the introductory lesson run by primer: its fixed variables,
the helper functions it demonstrates (Greet, CalculateGrade), the Student record,
and the flow that prints them in order.
*/
package lesson
